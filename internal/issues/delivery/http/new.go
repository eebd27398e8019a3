package http

import (
	"github.com/gin-gonic/gin"

	"devflow/internal/issues"
	"devflow/pkg/log"
)

// Handler is the public interface for the GitHub work HTTP delivery layer.
type Handler interface {
	GitHub(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc issues.UseCase
}

// New creates a new HTTP handler for the issues domain.
func New(l log.Logger, uc issues.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
