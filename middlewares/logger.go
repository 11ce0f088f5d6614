package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/personsvc/internal"
)

// RequestLogger returns middleware that logs one record per request
// with method, path, status and duration.
// Server errors are logged at error level, client errors at warn level.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (internal.Outcome, error) {
			start := time.Now()
			out, err := next(c)

			status := c.Status()
			switch {
			case err != nil:
				status = internal.ToFailure(err).StatusCode()
			case !c.Written():
				// Written after we return; an unset outcome ends up as 500.
				status = out.Kind().StatusCode()
				if status == 0 {
					status = http.StatusInternalServerError
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			}
			switch {
			case status >= 500:
				c.LogError("request completed", attrs...)
			case status >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}

			return out, err
		}
	}
}
