package http

import (
	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

// GitHub godoc
// @Summary     GitHub work
// @Description Open issues and pull requests of one repository, or without repo the issues assigned to and pull requests authored by the token owner. estimated_hours weights issues by label priority plus a flat share per pull request.
// @Tags        GitHub
// @Produce     json
// @Param       repo query string false "Repository as owner/name"
// @Success     200 {object} githubResp
// @Failure     400 {object} response.Resp
// @Failure     502 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /api/v1/github [GET]
func (h *handler) GitHub(c *gin.Context) {
	req, err := h.processGitHubReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ov, err := h.uc.Overview(c.Request.Context(), req.Repo)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newGitHubResp(ov))
}
