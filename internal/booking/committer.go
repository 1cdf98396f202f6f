package booking

import (
    "context"
    "fmt"

    "github.com/cinemapro/booking-api/internal/model"
)

// Committer durably records a finished selection in the showtime record.
// The merge write is the only server-side occupancy mutation of the
// whole flow and happens once, after final confirmation, never per
// toggle, so abandoned flows consume no seats.
type Committer struct {
    store OccupancyStore
}

// NewCommitter returns a Committer over the given store.
func NewCommitter(store OccupancyStore) *Committer {
    return &Committer{store: store}
}

// Commit validates the selection, re-checks occupancy and merges the
// selected seats into the showtime record.
//
// Validation failures (empty selection, missing key) are returned before
// any store call.  The occupancy re-fetch closes most of the window in
// which another client could take the same seats between the initial
// fetch and the commit: seats found occupied now yield a ConflictError
// and nothing is written, so the user reselects against fresh occupancy
// instead of both clients silently "winning" the seat.  A merge failure
// blocks the flow: no BookingDetails is produced and no ticket should
// be issued.
func (c *Committer) Commit(ctx context.Context, sel model.BookingSelection) (model.BookingDetails, error) {
    if len(sel.Seats) == 0 {
        return model.BookingDetails{}, ErrEmptySelection
    }
    if sel.Key == "" {
        return model.BookingDetails{}, ErrNoShowtime
    }

    rec, err := c.store.Fetch(ctx, sel.Key)
    if err != nil {
        return model.BookingDetails{}, fmt.Errorf("recheck occupancy for %s: %w", sel.Key, err)
    }
    var taken []model.SeatID
    for _, id := range sel.Seats {
        if rec.IsOccupied(id) {
            taken = append(taken, id)
        }
    }
    if len(taken) > 0 {
        return model.BookingDetails{}, &ConflictError{Seats: model.SortSeats(taken)}
    }

    if err := c.store.MergeOccupied(ctx, sel.Key, sel.Seats); err != nil {
        return model.BookingDetails{}, fmt.Errorf("merge occupancy for %s: %w", sel.Key, err)
    }

    return model.BookingDetails{
        MovieTitle:     sel.MovieTitle,
        Showtime:       sel.Showtime,
        Hall:           sel.Hall,
        Key:            sel.Key,
        Tier:           sel.Tier,
        Seats:          model.SeatLabels(sel.Seats),
        UnitPriceCents: sel.UnitPriceCents,
        SubtotalCents:  uint32(len(sel.Seats)) * sel.UnitPriceCents,
    }, nil
}
