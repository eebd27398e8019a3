package http

import (
	"github.com/gin-gonic/gin"

	"devflow/internal/middleware"
)

// RegisterRoutes maps the chat endpoints under rg. Only the chat turn is
// rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/status", h.Status)
}
