package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the GitHub work view under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/github", h.GitHub)
}
