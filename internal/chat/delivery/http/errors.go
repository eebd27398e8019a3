package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"devflow/internal/agent/orchestrator"
	"devflow/internal/chat"
	"devflow/pkg/response"
)

// mapError writes the response for a failed chat turn.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err)
	case errors.Is(err, orchestrator.ErrModelInvocation), errors.Is(err, orchestrator.ErrIterationLimit):
		response.BadGateway(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "chat.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
