package repository

import (
    "context"
    "errors"
    "strings"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/utils"
)

// UserRepo persists storefront accounts in the users collection.  The
// email field carries a unique index; duplicate inserts surface as
// ErrEmailExists.
type UserRepo struct {
    collection *mongo.Collection
}

// NewUserRepo returns a UserRepo over the given database.
func NewUserRepo(db *mongo.Database) *UserRepo {
    return &UserRepo{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index.  Called once at
// startup; creating an existing index is a no-op.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
    _, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
        Keys:    bson.D{{Key: "email", Value: 1}},
        Options: options.Index().SetUnique(true),
    })
    return err
}

// Create hashes the password and inserts the user, returning its id.
// The email is normalized before insertion.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (string, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return "", err
    }
    res, err := r.collection.InsertOne(ctx, model.User{
        Name:         strings.TrimSpace(name),
        Email:        email,
        PasswordHash: hash,
        CreatedAt:    time.Now().UTC(),
    })
    if err != nil {
        if mongo.IsDuplicateKeyError(err) {
            return "", ErrEmailExists
        }
        return "", err
    }
    oid, ok := res.InsertedID.(primitive.ObjectID)
    if !ok {
        return "", errors.New("unexpected inserted id type")
    }
    return oid.Hex(), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    var u model.User
    err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.User{}, ErrNotFound
    }
    return u, err
}

// GetByID fetches a user by its hex id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
    oid, err := primitive.ObjectIDFromHex(id)
    if err != nil {
        return model.User{}, ErrNotFound
    }
    var u model.User
    err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return model.User{}, ErrNotFound
    }
    return u, err
}
