package repository

import (
    "context"
    "errors"
    "fmt"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/cinemapro/booking-api/internal/model"
)

// MovieRepo reads the movie catalog.  The catalog is written only by the
// seed command, never by the storefront itself.
type MovieRepo struct {
    collection *mongo.Collection
}

// NewMovieRepo returns a MovieRepo over the given database.
func NewMovieRepo(db *mongo.Database) *MovieRepo {
    return &MovieRepo{collection: db.Collection("movies")}
}

// List returns the full catalog ordered by title.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
    opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
    cur, err := r.collection.Find(ctx, bson.M{}, opts)
    if err != nil {
        return nil, fmt.Errorf("list movies: %w", err)
    }
    defer cur.Close(ctx)

    movies := make([]model.Movie, 0)
    if err := cur.All(ctx, &movies); err != nil {
        return nil, fmt.Errorf("decode movies: %w", err)
    }
    return movies, nil
}

// GetByID returns one movie with its showtimes.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (model.Movie, error) {
    oid, err := primitive.ObjectIDFromHex(id)
    if err != nil {
        return model.Movie{}, ErrNotFound
    }
    var m model.Movie
    err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.Movie{}, ErrNotFound
    }
    return m, err
}

// GetByTitle returns the movie with the exact title, used to validate
// booking requests against the catalog.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (model.Movie, error) {
    var m model.Movie
    err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&m)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.Movie{}, ErrNotFound
    }
    return m, err
}

// Seed replaces the catalog with the given movies.  Only used by the
// seed command.
func (r *MovieRepo) Seed(ctx context.Context, movies []model.Movie) error {
    if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("clear movies: %w", err)
    }
    docs := make([]interface{}, len(movies))
    for i := range movies {
        docs[i] = movies[i]
    }
    if _, err := r.collection.InsertMany(ctx, docs); err != nil {
        return fmt.Errorf("seed movies: %w", err)
    }
    return nil
}
