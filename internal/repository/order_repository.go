package repository

import (
    "context"
    "errors"
    "fmt"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/cinemapro/booking-api/internal/model"
)

// OrderRepo persists completed bookings (digital tickets) in the orders
// collection.
type OrderRepo struct {
    collection *mongo.Collection
}

// NewOrderRepo returns an OrderRepo over the given database.
func NewOrderRepo(db *mongo.Database) *OrderRepo {
    return &OrderRepo{collection: db.Collection("orders")}
}

// Create inserts the order and populates its id.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
    o.CreatedAt = time.Now().UTC()
    res, err := r.collection.InsertOne(ctx, o)
    if err != nil {
        return fmt.Errorf("create order: %w", err)
    }
    if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
        o.ID = oid.Hex()
    }
    return nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
    opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
    cur, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
    if err != nil {
        return nil, fmt.Errorf("list orders: %w", err)
    }
    defer cur.Close(ctx)

    orders := make([]model.Order, 0)
    if err := cur.All(ctx, &orders); err != nil {
        return nil, fmt.Errorf("decode orders: %w", err)
    }
    return orders, nil
}

// GetByIDForUser returns one order, enforcing ownership.  A missing
// document or a document owned by someone else both yield ErrNotFound;
// the caller cannot tell whether a foreign ticket exists.
func (r *OrderRepo) GetByIDForUser(ctx context.Context, orderID, userID string) (model.Order, error) {
    oid, err := primitive.ObjectIDFromHex(orderID)
    if err != nil {
        return model.Order{}, ErrNotFound
    }
    var o model.Order
    err = r.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&o)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.Order{}, ErrNotFound
    }
    return o, err
}
