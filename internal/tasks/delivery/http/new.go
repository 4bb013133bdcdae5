package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/tasks"
	"smart-task-planner/pkg/log"
)

// Handler is the public interface for the tasks HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tasks.UseCase
}

// New creates a new HTTP handler for the tasks domain.
func New(l log.Logger, uc tasks.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
