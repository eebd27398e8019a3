package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"devflow/internal/calendar"
	"devflow/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidDate):
		response.Error(c, err)
	case errors.Is(err, calendar.ErrNotConfigured):
		response.Unavailable(c, err)
	case errors.Is(err, calendar.ErrListFailed):
		response.BadGateway(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "calendar.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
