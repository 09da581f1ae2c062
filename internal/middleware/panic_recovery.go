package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"fintrack/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Stack traces are capped so a deep recursion panic cannot flood the logs
const maxStackBytes = 8 << 10

// PanicRecovery converts panics into standardized 500 responses so a bug
// in one handler never takes the server down
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					writePanicResponse(c, r)
				}
			}()

			return next(c)
		}
	}
}

func writePanicResponse(c echo.Context, recovered interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	stack := debug.Stack()
	if len(stack) > maxStackBytes {
		stack = stack[:maxStackBytes]
	}

	attrs := []any{
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"stack", string(stack),
	}
	if userID, ok := c.Get("user_id").(uuid.UUID); ok {
		attrs = append(attrs, "user_id", userID)
	}
	slog.Error("panic recovered", attrs...)

	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
		slog.Error("failed to write panic response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
