package model

import "time"

// Movie is one entry of the storefront catalog.  Showtimes are embedded
// in the movie document; the catalog is small and read-heavy, so there
// is no separate showtimes collection.
//
// Fields:
//  ID         – document id (hex).
//  Title      – display title, also the input of ShowtimeKey derivation.
//  Genre      – display genre.
//  PosterURL  – externally hosted poster image.
//  VIP        – whether a VIP experience is offered.
//  Showtimes  – scheduled screenings of this movie.
//  CreatedAt  – creation timestamp (UTC).
type Movie struct {
    ID        string     `bson:"_id,omitempty" json:"id"`
    Title     string     `bson:"title" json:"title"`
    Genre     string     `bson:"genre" json:"genre"`
    PosterURL string     `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
    VIP       bool       `bson:"vip" json:"vip"`
    Showtimes []Showtime `bson:"showtimes" json:"showtimes"`
    CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// Showtime is a scheduled screening slot of a movie.
type Showtime struct {
    StartTime string `bson:"start_time" json:"start_time"` // e.g. "19:00"
    Hall      string `bson:"hall" json:"hall"`             // e.g. "Sala 3"
}
