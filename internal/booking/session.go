package booking

import (
    "context"
    "fmt"

    "github.com/cinemapro/booking-api/internal/model"
)

// SessionState tracks where a booking flow is in its lifecycle.
type SessionState int

const (
    // StateNoShowtime is the initial state; no showtime has been chosen
    // and seat operations are rejected.
    StateNoShowtime SessionState = iota
    // StateLoading means a showtime is chosen but its occupancy fetch
    // has not succeeded yet.  The session stays here after a failed
    // fetch so the caller can retry; it never falls back to an empty
    // occupancy set, which would let users pick seats already taken.
    StateLoading
    // StateReady means occupancy is loaded and seats can be toggled.
    StateReady
)

// Session is the selection controller for one booking flow.  It
// reconciles local seat taps with remote occupancy, enforces the
// selection rules and computes the ticket subtotal.  A Session is bound
// to a single flow on a single goroutine; it has no internal locking.
type Session struct {
    store  OccupancyStore
    layout model.HallLayout
    prices model.PriceTable

    state      SessionState
    movieTitle string
    showtime   string
    hall       string
    key        model.ShowtimeKey
    tier       model.ExperienceTier

    occupied map[model.SeatID]struct{}
    selected map[model.SeatID]struct{}
}

// NewSession creates a session over the given store, hall layout and
// price table.  The tier starts as Standard.
func NewSession(store OccupancyStore, layout model.HallLayout, prices model.PriceTable) *Session {
    return &Session{
        store:    store,
        layout:   layout,
        prices:   prices,
        state:    StateNoShowtime,
        tier:     model.TierStandard,
        occupied: map[model.SeatID]struct{}{},
        selected: map[model.SeatID]struct{}{},
    }
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Key returns the showtime key of the chosen showtime, or the empty key
// when none is chosen.
func (s *Session) Key() model.ShowtimeKey { return s.key }

// ChooseShowtime clears any previous local selection, derives the record
// key for the (movie, time) pair and fetches the current occupancy.  On
// fetch failure the session remains in StateLoading and the error is
// returned; the caller retries with Reload or by choosing again.
// Switching showtime always discards the old selection and occupancy;
// occupancy is never carried over between showtimes or visits.
func (s *Session) ChooseShowtime(ctx context.Context, movieTitle, showtime, hall string) error {
    s.movieTitle = movieTitle
    s.showtime = showtime
    s.hall = hall
    s.key = model.NewShowtimeKey(movieTitle, showtime)
    s.selected = map[model.SeatID]struct{}{}
    s.occupied = map[model.SeatID]struct{}{}
    s.state = StateLoading
    return s.Reload(ctx)
}

// Reload re-fetches occupancy for the chosen showtime.  It is the retry
// path after a failed fetch and may also be used to refresh occupancy in
// StateReady; locally selected seats found occupied on refresh are
// dropped, since remote occupancy wins.
func (s *Session) Reload(ctx context.Context) error {
    if s.state == StateNoShowtime {
        return ErrNoShowtime
    }
    rec, err := s.store.Fetch(ctx, s.key)
    if err != nil {
        s.state = StateLoading
        return fmt.Errorf("fetch occupancy for %s: %w", s.key, err)
    }
    s.occupied = rec.Occupied
    for id := range s.selected {
        if rec.IsOccupied(id) {
            delete(s.selected, id)
        }
    }
    s.state = StateReady
    return nil
}

// ToggleSeat flips the local selection of a seat.  It rejects toggles
// before a showtime is chosen, while occupancy is loading, for seats
// outside the hall grid and for remotely occupied seats.  Toggling the
// same free seat twice restores the original selection.
func (s *Session) ToggleSeat(id model.SeatID) error {
    switch s.state {
    case StateNoShowtime:
        return ErrNoShowtime
    case StateLoading:
        return ErrOccupancyLoading
    }
    if !s.layout.Contains(id) {
        return ErrSeatOutOfLayout
    }
    if _, ok := s.occupied[id]; ok {
        return ErrSeatOccupied
    }
    if _, ok := s.selected[id]; ok {
        delete(s.selected, id)
    } else {
        s.selected[id] = struct{}{}
    }
    return nil
}

// SetTier switches the experience tier.  Occupancy is unaffected: both
// tiers share the showtime's occupancy pool.
func (s *Session) SetTier(t model.ExperienceTier) error {
    if !t.Valid() {
        return fmt.Errorf("unknown experience tier %q", t)
    }
    s.tier = t
    return nil
}

// SeatState derives the current state of one seat.
func (s *Session) SeatState(id model.SeatID) model.SeatState {
    return DeriveSeatState(id, s.occupied, s.selected)
}

// SeatMap derives the full grid for rendering.
func (s *Session) SeatMap() SeatMap {
    return BuildSeatMap(s.layout, s.occupied, s.selected)
}

// SelectedCount returns the number of locally selected seats.
func (s *Session) SelectedCount() int { return len(s.selected) }

// UnitPriceCents returns the per-seat price for the current tier.
func (s *Session) UnitPriceCents() uint32 { return s.prices[s.tier] }

// SubtotalCents is the ticket subtotal: selected seats times the unit
// price of the current tier.  Pure; recomputed on every call.
func (s *Session) SubtotalCents() uint32 {
    return uint32(len(s.selected)) * s.prices[s.tier]
}

// Selection snapshots the current flow state for the committer.  The
// returned value owns its seat slice; later session changes do not leak
// into it.
func (s *Session) Selection() model.BookingSelection {
    seats := make([]model.SeatID, 0, len(s.selected))
    for id := range s.selected {
        seats = append(seats, id)
    }
    model.SortSeats(seats)
    return model.BookingSelection{
        MovieTitle:     s.movieTitle,
        Showtime:       s.showtime,
        Hall:           s.hall,
        Key:            s.key,
        Tier:           s.tier,
        UnitPriceCents: s.prices[s.tier],
        Seats:          seats,
    }
}

// Reset clears the session back to its initial state.  Called after a
// successful commit or when the flow is abandoned; nothing has been
// written remotely unless Commit succeeded.
func (s *Session) Reset() {
    s.state = StateNoShowtime
    s.movieTitle = ""
    s.showtime = ""
    s.hall = ""
    s.key = ""
    s.tier = model.TierStandard
    s.occupied = map[model.SeatID]struct{}{}
    s.selected = map[model.SeatID]struct{}{}
}
