// Command seed loads the movie catalog and the concession menu into
// MongoDB.  It replaces both collections wholesale, so it is meant for
// development and first-time setup, not for live environments.
package main

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/database"
    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/repository"
)

func catalog() []model.Movie {
    slots := []model.Showtime{
        {StartTime: "16:00", Hall: "Sala 1"},
        {StartTime: "19:00", Hall: "Sala 2"},
        {StartTime: "22:00", Hall: "Sala 3"},
    }
    now := time.Now().UTC()
    return []model.Movie{
        {
            Title:     "Avatar",
            Genre:     "Sci-Fi",
            VIP:       true,
            Showtimes: slots,
            CreatedAt: now,
        },
        {
            Title:     "Wicked: For Good",
            Genre:     "Musical",
            VIP:       true,
            Showtimes: slots,
            CreatedAt: now,
        },
        {
            Title:     "Black Phone 2",
            Genre:     "Horror",
            VIP:       false,
            Showtimes: slots,
            CreatedAt: now,
        },
        {
            Title:     "Frankenstein",
            Genre:     "Drama",
            VIP:       true,
            Showtimes: slots,
            CreatedAt: now,
        },
    }
}

func menu() []model.Snack {
    return []model.Snack{
        {Name: "Palomitas Grandes", Description: "Large buttered popcorn", PriceCents: 850},
        {Name: "Refresco Grande", Description: "Large fountain drink", PriceCents: 400},
        {Name: "Nachos con Queso", Description: "Nachos with cheese dip", PriceCents: 650},
        {Name: "Hot Dog Clásico", Description: "Classic hot dog", PriceCents: 500},
        {Name: "Chocolates", Description: "Assorted chocolate box", PriceCents: 350},
    }
}

func main() {
    _ = godotenv.Load()
    cfg := config.Load()

    client, err := database.Open(cfg.MongoURI)
    if err != nil {
        log.Fatalf("mongo connect: %v", err)
    }
    defer func() { _ = client.Disconnect(context.Background()) }()
    db := client.Database(cfg.MongoDB)

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    movies := catalog()
    if err := repository.NewMovieRepo(db).Seed(ctx, movies); err != nil {
        log.Fatalf("seed movies: %v", err)
    }
    snacks := menu()
    if err := repository.NewSnackRepo(db).Seed(ctx, snacks); err != nil {
        log.Fatalf("seed snacks: %v", err)
    }
    if err := repository.NewUserRepo(db).EnsureIndexes(ctx); err != nil {
        log.Fatalf("ensure user indexes: %v", err)
    }

    log.Printf("seeded %d movies and %d snacks into %s", len(movies), len(snacks), cfg.MongoDB)
}
