package model

// ExperienceTier selects the screening experience and therefore the
// per-seat ticket price.  Both tiers draw from the same occupancy pool
// for a given showtime.
type ExperienceTier string

const (
    TierStandard ExperienceTier = "STANDARD"
    TierVIP      ExperienceTier = "VIP"
)

// Valid reports whether the tier is one of the known values.
func (t ExperienceTier) Valid() bool {
    return t == TierStandard || t == TierVIP
}

// PriceTable maps experience tiers to their per-seat prices in cents.
type PriceTable map[ExperienceTier]uint32

// BookingSelection is the local state of one booking flow: the showtime
// the user is booking, the seats tentatively picked and the pricing
// context.  It lives for a single flow and is cleared when the flow is
// committed, abandoned or superseded by a new showtime choice.
type BookingSelection struct {
    MovieTitle     string
    Showtime       string
    Hall           string
    Key            ShowtimeKey
    Tier           ExperienceTier
    UnitPriceCents uint32
    Seats          []SeatID
}

// BookingDetails is the immutable snapshot handed to downstream stages
// (concessions, checkout) once a selection has been durably committed.
// The booking core never mutates it afterwards.
type BookingDetails struct {
    MovieTitle     string         `json:"movie_title"`
    Showtime       string         `json:"showtime"`
    Hall           string         `json:"hall"`
    Key            ShowtimeKey    `json:"showtime_key"`
    Tier           ExperienceTier `json:"experience"`
    Seats          []string       `json:"seats"`
    UnitPriceCents uint32         `json:"unit_price_cents"`
    SubtotalCents  uint32         `json:"subtotal_cents"`
}
