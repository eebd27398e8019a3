package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devflow/config"
	_ "devflow/docs"
	"devflow/internal/bootstrap"
	calendarHTTP "devflow/internal/calendar/delivery/http"
	chatHTTP "devflow/internal/chat/delivery/http"
	"devflow/internal/httpserver"
	issuesHTTP "devflow/internal/issues/delivery/http"
	"devflow/internal/middleware"
	tasksHTTP "devflow/internal/tasks/delivery/http"
	workloadHTTP "devflow/internal/workload/delivery/http"
	"devflow/pkg/log"
)

// @title       DevFlow API
// @description Developer productivity assistant: chat orchestration over calendar, tasks and GitHub, plus workload analysis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devflow: load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "devflow: %v", err)
		stop()
		os.Exit(1)
	}
	logger.Info(ctx, "devflow: server stopped")
}

// run wires the application and serves until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, l log.Logger) error {
	l.Infof(ctx, "devflow: starting in %s", cfg.Environment.Name)

	app, err := bootstrap.New(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			l.Warnf(ctx, "devflow: close: %v", err)
		}
	}()

	srv, err := httpserver.New(l, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Middleware:      middleware.New(l, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}),
		ChatHandler:     chatHTTP.New(l, app.Chat),
		WorkloadHandler: workloadHTTP.New(l, app.Workload),
		TasksHandler:    tasksHTTP.New(l, app.TaskBoard),
		CalendarHandler: calendarHTTP.New(l, app.Agenda),
		IssuesHandler:   issuesHTTP.New(l, app.Issues),
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return srv.Run(ctx)
}
