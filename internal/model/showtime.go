package model

import "strings"

// ShowtimeKey addresses the occupancy record of one (movie, start time)
// pair in the store.  The same pair must always produce the same key and
// distinct pairs must never collide: the key is the slug of the title
// joined to the start time with an underscore, and the time component
// contains no underscores, so the boundary between the two parts is
// unambiguous.  "Frankenstein" at "19:00" yields "Frankenstein_19:00".
//
// VIP and Standard screenings of the same showtime share one occupancy
// pool, so the experience tier does not enter the key.
type ShowtimeKey string

// NewShowtimeKey derives the record key for a movie title and start time.
func NewShowtimeKey(title, startTime string) ShowtimeKey {
    return ShowtimeKey(slugify(title) + "_" + strings.TrimSpace(startTime))
}

// slugify collapses whitespace runs into single dashes and drops every
// character that is not a letter, digit or dash.  Case is preserved so
// keys stay readable in the store.
func slugify(s string) string {
    var b strings.Builder
    fields := strings.Fields(strings.TrimSpace(s))
    for i, f := range fields {
        if i > 0 {
            b.WriteByte('-')
        }
        for _, r := range f {
            switch {
            case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
                b.WriteRune(r)
            }
        }
    }
    return b.String()
}

// ShowtimeRecord is a snapshot of the remote occupancy record for one
// showtime.  The store creates the record lazily on first write; reading
// an absent record yields an empty occupancy set.  The record is only
// ever mutated by additive merge, never replaced wholesale.
type ShowtimeRecord struct {
    Occupied map[SeatID]struct{}
}

// EmptyShowtimeRecord returns a record with no occupied seats, the value
// a read of an absent record resolves to.
func EmptyShowtimeRecord() ShowtimeRecord {
    return ShowtimeRecord{Occupied: map[SeatID]struct{}{}}
}

// IsOccupied reports whether the seat is in the record's occupancy set.
func (r ShowtimeRecord) IsOccupied(id SeatID) bool {
    _, ok := r.Occupied[id]
    return ok
}
