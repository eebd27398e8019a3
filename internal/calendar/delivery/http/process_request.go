package http

import "github.com/gin-gonic/gin"

type calendarReq struct {
	Date string `form:"date"`
}

// processCalendarReq binds the query string.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
