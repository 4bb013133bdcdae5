package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smart-task-planner/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID, echoed in the response header
// and attached to the request context for log correlation. An incoming
// X-Request-ID is honored.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, reqID)

		c.Next()
	}
}
