package main // Entry point package

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/database"
    "github.com/cinemapro/booking-api/internal/handler"
    "github.com/cinemapro/booking-api/internal/queue"
    "github.com/cinemapro/booking-api/internal/repository"
    "github.com/cinemapro/booking-api/internal/router"
    queuepub "github.com/cinemapro/booking-api/internal/service"
)

func main() {
    _ = godotenv.Load() // load .env if present; real env wins
    cfg := config.Load()

    client, err := database.Open(cfg.MongoURI)
    if err != nil {
        log.Fatalf("mongo connect: %v", err)
    }
    defer func() { _ = client.Disconnect(context.Background()) }()
    db := client.Database(cfg.MongoDB)

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    movies := repository.NewMovieRepo(db)
    snacks := repository.NewSnackRepo(db)
    showtimes := repository.NewShowtimeRepo(db)
    orders := repository.NewOrderRepo(db)

    {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        if err := users.EnsureIndexes(ctx); err != nil {
            log.Printf("ensure user indexes: %v", err)
        }
        cancel()
    }

    rdb := config.NewRedisClient() // nil disables cache and rate limiting

    authH := handler.NewAuthHandler(cfg, users, tokens)
    catalogH := handler.NewCatalogHandler(cfg, movies, snacks)
    bookingH := handler.NewBookingHandler(cfg, showtimes, movies, snacks, orders, users, queuepub.PublishBookingConfirmed)
    orderH := handler.NewOrderHandler(orders)

    e := echo.New()
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterCatalog(e, catalogH, bookingH, rdb)
    router.RegisterBooking(e, bookingH, orderH, cfg.JWTSecret)

    // Background consumer appends confirmations to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
