package http

import "github.com/gin-gonic/gin"

type githubReq struct {
	Repo string `form:"repo"`
}

// processGitHubReq binds the query string.
func (h *handler) processGitHubReq(c *gin.Context) (githubReq, error) {
	var req githubReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
