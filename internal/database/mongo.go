package database

import (
    "context"
    "time"

    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

// Open connects to MongoDB and verifies the connection with a ping.
// The caller owns the returned client and should disconnect it on
// shutdown.
func Open(uri string) (*mongo.Client, error) {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
    if err != nil {
        return nil, err
    }
    if err := client.Ping(ctx, readpref.Primary()); err != nil {
        _ = client.Disconnect(context.Background())
        return nil, err
    }
    return client, nil
}
