package booking

import (
    "context"
    "errors"

    "github.com/cinemapro/booking-api/internal/model"
)

// fakeStore is an in-memory OccupancyStore with per-call failure knobs
// and call counters, shared by the tests in this package.
type fakeStore struct {
    records map[model.ShowtimeKey]map[model.SeatID]struct{}

    failFetch bool
    failMerge bool

    fetchCalls int
    mergeCalls int
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore() *fakeStore {
    return &fakeStore{records: map[model.ShowtimeKey]map[model.SeatID]struct{}{}}
}

func (f *fakeStore) seed(key model.ShowtimeKey, seats ...string) {
    rec := f.records[key]
    if rec == nil {
        rec = map[model.SeatID]struct{}{}
        f.records[key] = rec
    }
    for _, s := range seats {
        id, err := model.ParseSeatID(s)
        if err != nil {
            panic(err)
        }
        rec[id] = struct{}{}
    }
}

func (f *fakeStore) occupied(key model.ShowtimeKey) []string {
    seats := make([]model.SeatID, 0, len(f.records[key]))
    for id := range f.records[key] {
        seats = append(seats, id)
    }
    return model.SeatLabels(seats)
}

func (f *fakeStore) Fetch(ctx context.Context, key model.ShowtimeKey) (model.ShowtimeRecord, error) {
    f.fetchCalls++
    if f.failFetch {
        return model.ShowtimeRecord{}, errStoreDown
    }
    rec := model.EmptyShowtimeRecord()
    for id := range f.records[key] {
        rec.Occupied[id] = struct{}{}
    }
    return rec, nil
}

func (f *fakeStore) MergeOccupied(ctx context.Context, key model.ShowtimeKey, seats []model.SeatID) error {
    f.mergeCalls++
    if f.failMerge {
        return errStoreDown
    }
    rec := f.records[key]
    if rec == nil {
        rec = map[model.SeatID]struct{}{}
        f.records[key] = rec
    }
    for _, id := range seats {
        rec[id] = struct{}{}
    }
    return nil
}
