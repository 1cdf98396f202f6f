package booking

import (
    "context"

    "github.com/cinemapro/booking-api/internal/model"
)

// OccupancyStore is the boundary to the remote showtime record store.
// The production implementation lives in the repository package on top
// of MongoDB; tests substitute an in-memory fake.
type OccupancyStore interface {
    // Fetch reads the occupancy record for a showtime.  An absent record
    // resolves to an empty occupancy set, not an error.  Transient
    // failures are returned as errors and must never be collapsed into
    // an empty set by callers.
    Fetch(ctx context.Context, key model.ShowtimeKey) (model.ShowtimeRecord, error)

    // MergeOccupied unions the given seats into the record's occupancy
    // set, creating the record if absent.  The write is additive only:
    // it must never replace the full set, so concurrent commits from
    // other clients are never lost.
    MergeOccupied(ctx context.Context, key model.ShowtimeKey, seats []model.SeatID) error
}
