package http

import (
	"github.com/gin-gonic/gin"

	"devflow/internal/tasks"
	"devflow/pkg/log"
)

// Handler is the public interface for the tasks HTTP delivery layer.
type Handler interface {
	Tasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tasks.UseCase
}

// New creates a new HTTP handler for the tasks domain.
func New(l log.Logger, uc tasks.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
