package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only workload views under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/workload", h.Workload)
	rg.GET("/summary", h.Summary)
	rg.GET("/dashboard", h.Dashboard)
}
