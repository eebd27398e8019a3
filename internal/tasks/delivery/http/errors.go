package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"devflow/internal/tasks"
	"devflow/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tasks.ErrNotConfigured):
		response.Unavailable(c, err)
	case errors.Is(err, tasks.ErrListFailed):
		response.BadGateway(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "tasks.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
