package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"smart-task-planner/pkg/response"
)

// RateLimit applies a token-bucket limiter to the API. The service is a
// single-client utility, so one shared bucket is enough.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(mw.cfg.RateLimit.RequestsPerSecond), mw.cfg.RateLimit.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
