// Package booking implements the seat-selection-and-reservation flow:
// deriving seat states from remote occupancy and local selection,
// enforcing selection rules while a flow is in progress, and durably
// committing the final selection to the shared showtime record with an
// additive merge.
package booking

import (
    "errors"
    "fmt"
    "strings"

    "github.com/cinemapro/booking-api/internal/model"
)

// ErrNoShowtime is returned when an operation requires a chosen showtime
// and none has been chosen yet.  Callers should prompt the user to pick
// a showtime first.
var ErrNoShowtime = errors.New("no showtime chosen")

// ErrOccupancyLoading is returned while the occupancy fetch for the
// chosen showtime is unresolved (including after a failed fetch, until a
// retry succeeds).  Seat toggles are rejected in this state so the user
// can never select against stale or missing occupancy.
var ErrOccupancyLoading = errors.New("occupancy not loaded")

// ErrSeatOccupied is returned when the user toggles a seat that the
// remote record already marks as occupied.
var ErrSeatOccupied = errors.New("seat unavailable")

// ErrSeatOutOfLayout is returned when a seat id falls outside the hall
// grid.
var ErrSeatOutOfLayout = errors.New("seat outside hall layout")

// ErrEmptySelection is returned by Commit when the selection holds no
// seats.  No store call is made.
var ErrEmptySelection = errors.New("no seats selected")

// ConflictError reports seats that became occupied between the occupancy
// fetch and the commit.  The flow is recoverable: the caller re-enters
// seat selection with refreshed occupancy and the user picks again.
type ConflictError struct {
    Seats []model.SeatID // seats lost to another client, row/column order
}

func (e *ConflictError) Error() string {
    return fmt.Sprintf("seats no longer available: %s", strings.Join(model.SeatLabels(e.Seats), ", "))
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
    var ce *ConflictError
    return errors.As(err, &ce)
}
