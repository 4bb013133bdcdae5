package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registers /api/tasks/analyze/ and /api/tasks/suggest/ when mounted on
// the /api group. Trailing slashes are part of the public contract.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasksGroup := rg.Group("/tasks")
	{
		tasksGroup.POST("/analyze/", h.Analyze)
		tasksGroup.POST("/suggest/", h.Suggest)
	}
}
