package model

import "time"

// Order is a completed booking: the digital ticket shown under
// "My tickets".  It is written once at checkout and never mutated by the
// booking core afterwards.
//
// Fields:
//  ID               – document id (hex).
//  Reference        – opaque booking reference printed on the ticket.
//  UserID           – owner of the ticket.
//  MovieTitle       – booked movie.
//  Showtime         – start time of the screening.
//  Hall             – hall name.
//  Tier             – experience tier the seats were booked at.
//  Seats            – canonical seat labels, row/column order.
//  Snacks           – concession items bought with the ticket.
//  TicketsCents     – seat subtotal in cents.
//  SnacksCents      – concessions subtotal in cents.
//  TotalCents       – grand total in cents.
//  QRPayload        – JSON encoded into the ticket QR code.
//  CreatedAt        – purchase timestamp (UTC).
type Order struct {
    ID           string           `bson:"_id,omitempty" json:"id"`
    Reference    string           `bson:"reference" json:"reference"`
    UserID       string           `bson:"user_id" json:"-"`
    MovieTitle   string           `bson:"movie_title" json:"movie_title"`
    Showtime     string           `bson:"showtime" json:"showtime"`
    Hall         string           `bson:"hall" json:"hall"`
    Tier         ExperienceTier   `bson:"tier" json:"experience"`
    Seats        []string         `bson:"seats" json:"seats"`
    Snacks       []SnackOrderItem `bson:"snacks" json:"snacks"`
    TicketsCents uint32           `bson:"tickets_cents" json:"tickets_cents"`
    SnacksCents  uint32           `bson:"snacks_cents" json:"snacks_cents"`
    TotalCents   uint32           `bson:"total_cents" json:"total_cents"`
    QRPayload    string           `bson:"qr_payload" json:"-"`
    CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
}
