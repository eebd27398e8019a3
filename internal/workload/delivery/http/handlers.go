package http

import (
	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

// Workload godoc
// @Summary     Workload analysis
// @Description Aggregates calendar, tasks and GitHub into estimated hours, a tier and recommendations. A failing source contributes zero and is listed in source_errors.
// @Tags        Workload
// @Produce     json
// @Success     200 {object} workloadResp
// @Router      /api/v1/workload [GET]
func (h *handler) Workload(c *gin.Context) {
	ctx := c.Request.Context()

	col := h.uc.Collect(ctx)
	response.OK(c, newWorkloadResp(h.uc.Analyze(col)))
}

// Summary godoc
// @Summary     Daily summary
// @Description Counts today's calendar events, pending tasks, assigned issues and open pull requests.
// @Tags        Workload
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	col := h.uc.Collect(ctx)
	response.OK(c, newSummaryResp(h.uc.Summarize(col)))
}

// Dashboard godoc
// @Summary     Dashboard
// @Description Daily summary, workload analysis and open assigned issues from a single collection.
// @Tags        Workload
// @Produce     json
// @Success     200 {object} dashboardResp
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, newDashboardResp(h.uc.Dashboard(ctx)))
}
