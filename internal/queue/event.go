// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// committed and its order stored.  It carries enough for downstream
// consumers to log, notify or feed analytics without querying the
// primary store.
type BookingConfirmedEvent struct {
    OrderID     string   `json:"order_id"`
    Reference   string   `json:"reference"`
    UserID      string   `json:"user_id"`
    MovieTitle  string   `json:"movie_title"`
    Showtime    string   `json:"showtime"`
    Hall        string   `json:"hall"`
    Experience  string   `json:"experience"`
    Seats       []string `json:"seats"`
    TotalCents  uint32   `json:"total_cents"`
    ConfirmedAt string   `json:"confirmed_at"`
}
