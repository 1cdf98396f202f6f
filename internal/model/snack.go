package model

// Snack is one concession item of the storefront menu.
//
// Fields:
//  ID          – document id (hex).
//  Name        – display name.
//  Description – short description shown under the name.
//  PriceCents  – unit price in cents.
//  ImageURL    – externally hosted product image.
type Snack struct {
    ID          string `bson:"_id,omitempty" json:"id"`
    Name        string `bson:"name" json:"name"`
    Description string `bson:"description" json:"description"`
    PriceCents  uint32 `bson:"price_cents" json:"price_cents"`
    ImageURL    string `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// SnackOrderItem records a purchased snack line on an order.
type SnackOrderItem struct {
    SnackID    string `bson:"snack_id" json:"snack_id"`
    Name       string `bson:"name" json:"name"`
    Quantity   int    `bson:"quantity" json:"quantity"`
    PriceCents uint32 `bson:"price_cents" json:"price_cents"` // unit price at purchase time
}
