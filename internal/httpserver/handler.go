package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-task-planner/internal/middleware"
	"smart-task-planner/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// Single-page task collector
	srv.gin.StaticFile("/", "./web/index.html")
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	api.Use(mw.RateLimit())

	if err := srv.setupTasksDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
