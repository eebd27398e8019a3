package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the task list view under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/tasks", h.Tasks)
}
