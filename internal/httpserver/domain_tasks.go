package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	tasksHTTP "smart-task-planner/internal/tasks/delivery/http"
	tasksUC "smart-task-planner/internal/tasks/usecase"
)

// setupTasksDomain initializes the tasks domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, cfg)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupTasksDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := tasksUC.New(srv.l, tasksUC.Config{
		CacheSize:    srv.cfg.Planner.CacheSize,
		SuggestLimit: srv.cfg.Planner.SuggestLimit,
		MaxBatchSize: srv.cfg.Planner.MaxBatchSize,
	})

	// 2. HTTP Handler
	h := tasksHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/tasks/analyze/ and /api/tasks/suggest/
	tasksHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Tasks domain registered")
	return nil
}
