package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPError values set the status code;
// anything else is treated as a 400 bad request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Status,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error without leaking details.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 when the rate limiter rejects a request.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
