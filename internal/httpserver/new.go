package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	calendarHTTP "devflow/internal/calendar/delivery/http"
	chatHTTP "devflow/internal/chat/delivery/http"
	issuesHTTP "devflow/internal/issues/delivery/http"
	"devflow/internal/middleware"
	tasksHTTP "devflow/internal/tasks/delivery/http"
	workloadHTTP "devflow/internal/workload/delivery/http"
	"devflow/pkg/log"
)

// HTTPServer is the gin engine with the system routes and every
// configured domain mounted.
type HTTPServer struct {
	gin       *gin.Engine
	l         log.Logger
	port      int
	mw        middleware.Middleware
	startedAt time.Time

	chatHandler     chatHTTP.Handler
	workloadHandler workloadHTTP.Handler
	tasksHandler    tasksHTTP.Handler
	calendarHandler calendarHTTP.Handler
	issuesHandler   issuesHTTP.Handler
}

// Config carries the listener settings and the domain handlers. A nil
// handler leaves its routes unmounted.
type Config struct {
	Port       int
	Mode       string
	Middleware middleware.Middleware

	ChatHandler     chatHTTP.Handler
	WorkloadHandler workloadHTTP.Handler
	TasksHandler    tasksHTTP.Handler
	CalendarHandler calendarHTTP.Handler
	IssuesHandler   issuesHTTP.Handler
}

// New validates cfg and builds the routed engine.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if l == nil {
		return nil, errors.New("httpserver: logger is required")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("httpserver: port is required")
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.ReleaseMode
	}
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		port:            cfg.Port,
		mw:              cfg.Middleware,
		startedAt:       time.Now(),
		chatHandler:     cfg.ChatHandler,
		workloadHandler: cfg.WorkloadHandler,
		tasksHandler:    cfg.TasksHandler,
		calendarHandler: cfg.CalendarHandler,
		issuesHandler:   cfg.IssuesHandler,
	}
	srv.mapHandlers()
	return srv, nil
}
