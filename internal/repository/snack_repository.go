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

// SnackRepo reads the concession menu.  Like movies, the menu is written
// only by the seed command.
type SnackRepo struct {
    collection *mongo.Collection
}

// NewSnackRepo returns a SnackRepo over the given database.
func NewSnackRepo(db *mongo.Database) *SnackRepo {
    return &SnackRepo{collection: db.Collection("snacks")}
}

// List returns the full menu ordered by name.
func (r *SnackRepo) List(ctx context.Context) ([]model.Snack, error) {
    opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
    cur, err := r.collection.Find(ctx, bson.M{}, opts)
    if err != nil {
        return nil, fmt.Errorf("list snacks: %w", err)
    }
    defer cur.Close(ctx)

    snacks := make([]model.Snack, 0)
    if err := cur.All(ctx, &snacks); err != nil {
        return nil, fmt.Errorf("decode snacks: %w", err)
    }
    return snacks, nil
}

// GetByID returns one snack, used to price booking snack lines at
// purchase time.
func (r *SnackRepo) GetByID(ctx context.Context, id string) (model.Snack, error) {
    oid, err := primitive.ObjectIDFromHex(id)
    if err != nil {
        return model.Snack{}, ErrNotFound
    }
    var s model.Snack
    err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.Snack{}, ErrNotFound
    }
    return s, err
}

// Seed replaces the menu with the given snacks.  Only used by the seed
// command.
func (r *SnackRepo) Seed(ctx context.Context, snacks []model.Snack) error {
    if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("clear snacks: %w", err)
    }
    docs := make([]interface{}, len(snacks))
    for i := range snacks {
        docs[i] = snacks[i]
    }
    if _, err := r.collection.InsertMany(ctx, docs); err != nil {
        return fmt.Errorf("seed snacks: %w", err)
    }
    return nil
}
