package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"rental-backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panic below a statement or wallet route into a
// standardized 500 response instead of taking the process down. The full
// stack goes to the log under the request's trace ID so the failing run can
// be reconstructed.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if writeErr := c.JSON(http.StatusInternalServerError, response); writeErr != nil {
					slog.Error("failed to write panic recovery response",
						"trace_id", traceID,
						"error", writeErr.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
