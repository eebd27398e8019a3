package http

import (
	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

// Calendar godoc
// @Summary     Agenda of a day
// @Description Lists the Google Calendar events of one day. date accepts today, tomorrow, a weekday, "in N days" or YYYY-MM-DD and defaults to today.
// @Tags        Calendar
// @Produce     json
// @Param       date query string false "Day to list" default(today)
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp
// @Failure     502 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /api/v1/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	day, err := h.uc.Day(c.Request.Context(), req.Date)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newDayResp(day))
}
