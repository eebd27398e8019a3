package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"devflow/internal/issues"
	"devflow/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, issues.ErrInvalidRepo):
		response.Error(c, err)
	case errors.Is(err, issues.ErrNotConfigured):
		response.Unavailable(c, err)
	case errors.Is(err, issues.ErrFetchFailed):
		response.BadGateway(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "issues.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
