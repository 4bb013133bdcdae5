package log

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID returns a ctx carrying the given request ID.
func ContextWithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// RequestIDFromContext extracts the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
