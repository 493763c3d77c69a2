package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sonnasweet/ordering-system/internal/api/metrics"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/db/redis"
)

const msgTooManyRequests = "Too many requests from this IP, please try again later."

// RateLimit rejects clients that exceed the fixed-window budget, keyed by
// source IP. Redis errors fail open: losing the limiter must not take the
// API down with it.
func RateLimit(limiter *redis.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, msgTooManyRequests)
			}
			return next(c)
		}
	}
}
