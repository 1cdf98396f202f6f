package repository

import (
    "context"
    "errors"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
)

// refreshTokenDoc mirrors the refresh_tokens collection.  Only the
// SHA-256 hash of a refresh token is stored; the raw token lives solely
// with the client.
type refreshTokenDoc struct {
    UserID    string     `bson:"user_id"`
    TokenHash string     `bson:"token_hash"`
    ExpiresAt time.Time  `bson:"expires_at"`
    RevokedAt *time.Time `bson:"revoked_at,omitempty"`
    CreatedAt time.Time  `bson:"created_at"`
}

// TokenRepo persists and validates refresh token hashes.
type TokenRepo struct {
    collection *mongo.Collection
}

// NewTokenRepo returns a TokenRepo over the given database.
func NewTokenRepo(db *mongo.Database) *TokenRepo {
    return &TokenRepo{collection: db.Collection("refresh_tokens")}
}

// StoreRefresh inserts a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
    _, err := r.collection.InsertOne(ctx, refreshTokenDoc{
        UserID:    userID,
        TokenHash: tokenHash,
        ExpiresAt: exp.UTC(),
        CreatedAt: time.Now().UTC(),
    })
    return err
}

// ValidateRefresh returns the user id if a non-revoked, non-expired
// token with this hash exists; otherwise ErrNotFound.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
    var doc refreshTokenDoc
    err := r.collection.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&doc)
    if err != nil {
        if errors.Is(err, mongo.ErrNoDocuments) {
            return "", ErrNotFound
        }
        return "", err
    }
    if doc.RevokedAt != nil || time.Now().UTC().After(doc.ExpiresAt) {
        return "", ErrNotFound
    }
    return doc.UserID, nil
}

// RevokeByHash marks a token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
    now := time.Now().UTC()
    _, err := r.collection.UpdateOne(ctx,
        bson.M{"token_hash": tokenHash, "revoked_at": bson.M{"$exists": false}},
        bson.M{"$set": bson.M{"revoked_at": now}})
    return err
}

// RevokeAllForUser revokes every active token of a user.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
    now := time.Now().UTC()
    _, err := r.collection.UpdateMany(ctx,
        bson.M{"user_id": userID, "revoked_at": bson.M{"$exists": false}},
        bson.M{"$set": bson.M{"revoked_at": now}})
    return err
}
