package model

import "time"

// User is a storefront account.  Every account is a customer; the
// storefront has no staff or owner surface.
//
// Fields:
//  ID           – document id (hex).
//  Name         – display name shown on tickets.
//  Email        – normalized (lower-case, trimmed) login email, unique.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – registration timestamp (UTC).
type User struct {
    ID           string    `bson:"_id,omitempty" json:"id"`
    Name         string    `bson:"name" json:"name"`
    Email        string    `bson:"email" json:"email"`
    PasswordHash string    `bson:"password_hash" json:"-"`
    CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
