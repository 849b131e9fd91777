package middleware

import (
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace id in both directions
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where RequestID stores the id on the echo context
	TraceIDContextKey = handlers.TraceIDContextKey

	maxTraceIDLength = 128
)

// RequestID tags every request with a trace id, reusing the caller's X-Trace-ID when it
// has one. The id ends up in the response header, on the echo context for error bodies
// and on the request context for service logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := incomingTraceID(c)

			c.Set(TraceIDContextKey, traceID)
			req := c.Request()
			c.SetRequest(req.WithContext(services.WithRequestID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// incomingTraceID returns the caller's id, or a fresh uuid when it is missing or oversized
func incomingTraceID(c echo.Context) string {
	if id := c.Request().Header.Get(TraceIDHeader); id != "" && len(id) <= maxTraceIDLength {
		return id
	}
	return uuid.NewString()
}

// GetTraceID returns the request's trace id, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
