// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tablebook/reservation-api/internal/config"
	"github.com/tablebook/reservation-api/internal/handler"
	"github.com/tablebook/reservation-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the reservation API under /v1. Every route is
// guarded by bearer-token verification and rate limited per client IP. The
// response cache applies to the list endpoint only: availability answers
// and mutations must always reach the engine.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.BearerAuth(jwtSecret))
	g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	g.POST("/availability", h.CheckAvailability)
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings, middleware.NewResponseCache(config.LoadCacheConfig(), rdb))
	g.DELETE("/bookings/:id", h.CancelBooking)
}
