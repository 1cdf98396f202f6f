// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/handler"
    "github.com/cinemapro/booking-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)

    auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
    auth.POST("/logout", a.Logout)
    auth.GET("/me", a.Me)
}

// RegisterCatalog registers the public browse endpoints: the movie
// catalog, the concession menu and per-showtime occupancy.  Catalog
// reads go through the Redis response cache and the rate limiter when
// available; occupancy reads are rate limited but never cached, since a
// stale occupancy set would let clients select taken seats.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, b *handler.BookingHandler, rdb *redis.Client) {
    rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    e.GET("/v1/movies", h.ListMovies, rl, cache)
    e.GET("/v1/movies/:id", h.GetMovie, rl, cache)
    e.GET("/v1/snacks", h.ListSnacks, rl, cache)
    e.GET("/v1/showtimes/occupancy", b.Occupancy, rl)
}

// RegisterBooking registers the protected checkout and ticket routes.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, o *handler.OrderHandler, jwtSecret string) {
    auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
    auth.POST("/bookings", b.Create)
    auth.GET("/orders", o.List)
    auth.GET("/orders/:id", o.Get)
    auth.GET("/orders/:id/qr", o.QR)
}
