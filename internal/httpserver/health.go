package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

const (
	ServiceName    = "devflow"
	ServiceVersion = "1.0.0"
)

var errChatNotMounted = errors.New("chat routes are not mounted")

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:  status,
		Service: ServiceName,
		Version: ServiceVersion,
		Uptime:  time.Since(srv.startedAt).Round(time.Second).String(),
	}
}

// healthCheck
// @Summary     Health check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp{data=healthResp}
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck fails until the chat routes are mounted.
// @Summary     Readiness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp{data=healthResp}
// @Failure     503 {object} response.Resp
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.chatHandler == nil {
		response.Unavailable(c, errChatNotMounted)
		return
	}
	response.OK(c, srv.health("ready"))
}

// liveCheck
// @Summary     Liveness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp{data=healthResp}
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
