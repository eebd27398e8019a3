package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the agenda view under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/calendar", h.Calendar)
}
