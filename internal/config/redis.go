package config

// Redis backs the distributed rate limiter and the catalog response
// cache.  If the connection cannot be established at startup the
// constructor returns nil and both features are disabled; the booking
// flow itself never depends on Redis.

import (
    "context"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from environment variables:
//
//	REDIS_ADDR     – host:port (default "localhost:6379")
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The returned client is nil when the server cannot be reached.
func NewRedisClient() *redis.Client {
    client := redis.NewClient(&redis.Options{
        Addr:     envStr("REDIS_ADDR", "localhost:6379"),
        Password: envStr("REDIS_PASSWORD", ""),
        DB:       envInt("REDIS_DB", 0),
    })
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
