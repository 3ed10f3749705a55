package middleware

import (
	"time"

	"storefront/internal/infra/logger"

	"github.com/labstack/echo/v4"
)

// RequestLog writes one line per request. 5xx logs at Error, 4xx at Warn.
func RequestLog(log *logger.Logger) echo.MiddlewareFunc {
	log = log.With("component", "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo's error handler write the response so the status is final
				c.Error(err)
			}

			res := c.Response()
			kv := []interface{}{
				"method", c.Request().Method,
				"route", c.Path(),
				"status", res.Status,
				"duration", time.Since(start),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			switch {
			case res.Status >= 500:
				log.Error("request", append(kv, "error", err)...)
			case res.Status >= 400:
				log.Warn("request", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		}
	}
}
