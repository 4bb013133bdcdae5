package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code, raised by delivery
// layers when mapping domain errors to responses.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
