package http

import (
	"github.com/gin-gonic/gin"

	"devflow/internal/workload"
	"devflow/pkg/log"
)

// Handler is the public interface for the workload HTTP delivery layer.
type Handler interface {
	Workload(c *gin.Context)
	Summary(c *gin.Context)
	Dashboard(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workload.UseCase
}

// New creates a new HTTP handler for the workload domain.
func New(l log.Logger, uc workload.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
