package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "devflow/internal/calendar/delivery/http"
	chatHTTP "devflow/internal/chat/delivery/http"
	issuesHTTP "devflow/internal/issues/delivery/http"
	tasksHTTP "devflow/internal/tasks/delivery/http"
	workloadHTTP "devflow/internal/workload/delivery/http"
	"devflow/pkg/metrics"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() {
	srv.gin.Use(gin.Recovery(), srv.mw.CORS(), srv.mw.Observe())

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	ctx := context.Background()
	api := srv.gin.Group(apiPrefix)

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)
		srv.l.Infof(ctx, "httpserver: chat routes mounted under %s", apiPrefix)
	} else {
		srv.l.Warnf(ctx, "httpserver: no chat handler, %s/chat is not served", apiPrefix)
	}

	if srv.workloadHandler != nil {
		workloadHTTP.RegisterRoutes(api, srv.workloadHandler)
		srv.l.Infof(ctx, "httpserver: workload routes mounted under %s", apiPrefix)
	}
	if srv.tasksHandler != nil {
		tasksHTTP.RegisterRoutes(api, srv.tasksHandler)
	}
	if srv.calendarHandler != nil {
		calendarHTTP.RegisterRoutes(api, srv.calendarHandler)
	}
	if srv.issuesHandler != nil {
		issuesHTTP.RegisterRoutes(api, srv.issuesHandler)
	}
}
