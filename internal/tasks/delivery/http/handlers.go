package http

import (
	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

// Tasks godoc
// @Summary     Pending tasks
// @Description Lists pending Google Tasks with parsed priority and estimate, plus total, completed and pending counts.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} tasksResp
// @Failure     502 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /api/v1/tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	ov, err := h.uc.Overview(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newTasksResp(ov))
}
