package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter decides whether a request identified by (scope, key) may proceed.
type Limiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// RateLimit rejects requests over the limiter's budget with 429, keyed by
// client IP. Limiter failures fail open: losing Redis must not take the
// endpoints down with it.
func RateLimit(scope string, limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
