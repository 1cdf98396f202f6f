package booking

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/cinemapro/booking-api/internal/model"
)

var testPrices = model.PriceTable{
    model.TierStandard: 850,
    model.TierVIP:      1200,
}

func newTestSession(store OccupancyStore) *Session {
    return NewSession(store, model.DefaultHallLayout(), testPrices)
}

func TestToggleBeforeShowtimeRejected(t *testing.T) {
    s := newTestSession(newFakeStore())
    err := s.ToggleSeat(seat(t, "A1"))
    assert.ErrorIs(t, err, ErrNoShowtime)
    assert.Equal(t, StateNoShowtime, s.State())
}

func TestChooseShowtimeLoadsOccupancy(t *testing.T) {
    store := newFakeStore()
    store.seed("Frankenstein_19:00", "A1", "A2")
    s := newTestSession(store)

    require.NoError(t, s.ChooseShowtime(context.Background(), "Frankenstein", "19:00", "Sala 1"))
    assert.Equal(t, StateReady, s.State())
    assert.Equal(t, model.ShowtimeKey("Frankenstein_19:00"), s.Key())
    assert.Equal(t, model.SeatOccupied, s.SeatState(seat(t, "A1")))
    assert.Equal(t, model.SeatFree, s.SeatState(seat(t, "A3")))
}

// A failed occupancy fetch must leave the session loading, not ready
// with an empty occupancy set, which would let the user select seats
// that are already taken.
func TestFetchFailureDoesNotDefaultToEmpty(t *testing.T) {
    store := newFakeStore()
    store.seed("Frankenstein_19:00", "A1")
    store.failFetch = true
    s := newTestSession(store)

    err := s.ChooseShowtime(context.Background(), "Frankenstein", "19:00", "Sala 1")
    require.Error(t, err)
    assert.Equal(t, StateLoading, s.State())
    assert.ErrorIs(t, s.ToggleSeat(seat(t, "A1")), ErrOccupancyLoading)

    // Retry succeeds and surfaces the real occupancy.
    store.failFetch = false
    require.NoError(t, s.Reload(context.Background()))
    assert.Equal(t, StateReady, s.State())
    assert.ErrorIs(t, s.ToggleSeat(seat(t, "A1")), ErrSeatOccupied)
}

func TestToggleIdempotent(t *testing.T) {
    s := newTestSession(newFakeStore())
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "22:00", "Sala 2"))

    require.NoError(t, s.ToggleSeat(seat(t, "B1")))
    assert.Equal(t, model.SeatSelected, s.SeatState(seat(t, "B1")))
    assert.Equal(t, 1, s.SelectedCount())

    require.NoError(t, s.ToggleSeat(seat(t, "B1")))
    assert.Equal(t, model.SeatFree, s.SeatState(seat(t, "B1")))
    assert.Equal(t, 0, s.SelectedCount())
}

func TestToggleOccupiedRejected(t *testing.T) {
    store := newFakeStore()
    store.seed("Avatar_22:00", "C1")
    s := newTestSession(store)
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "22:00", "Sala 2"))

    err := s.ToggleSeat(seat(t, "C1"))
    assert.ErrorIs(t, err, ErrSeatOccupied)
    assert.Equal(t, 0, s.SelectedCount())
}

func TestToggleOutsideLayoutRejected(t *testing.T) {
    s := newTestSession(newFakeStore())
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "22:00", "Sala 2"))
    assert.ErrorIs(t, s.ToggleSeat(seat(t, "Z9")), ErrSeatOutOfLayout)
}

// Switching showtime discards the previous local selection and fetches
// occupancy for the new key.
func TestShowtimeSwitchClearsSelection(t *testing.T) {
    store := newFakeStore()
    s := newTestSession(store)

    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "19:00", "Sala 1"))
    require.NoError(t, s.ToggleSeat(seat(t, "A1")))
    require.Equal(t, 1, s.SelectedCount())
    fetches := store.fetchCalls

    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "22:00", "Sala 1"))
    assert.Equal(t, 0, s.SelectedCount())
    assert.Equal(t, model.ShowtimeKey("Avatar_22:00"), s.Key())
    assert.Equal(t, fetches+1, store.fetchCalls, "switching showtime must re-fetch occupancy")
}

func TestSubtotalTracksTierAndSelection(t *testing.T) {
    s := newTestSession(newFakeStore())
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "19:00", "Sala 1"))

    require.NoError(t, s.ToggleSeat(seat(t, "A3")))
    require.NoError(t, s.ToggleSeat(seat(t, "B1")))
    assert.Equal(t, uint32(1700), s.SubtotalCents())

    require.NoError(t, s.SetTier(model.TierVIP))
    assert.Equal(t, uint32(2400), s.SubtotalCents())

    require.NoError(t, s.ToggleSeat(seat(t, "B1")))
    assert.Equal(t, uint32(1200), s.SubtotalCents())

    assert.Error(t, s.SetTier(model.ExperienceTier("DELUXE")))
}

// Reloading in Ready drops locally selected seats that another client
// occupied in the meantime.
func TestReloadDropsNewlyOccupiedSelection(t *testing.T) {
    store := newFakeStore()
    s := newTestSession(store)
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "19:00", "Sala 1"))
    require.NoError(t, s.ToggleSeat(seat(t, "C1")))

    store.seed("Avatar_19:00", "C1")
    require.NoError(t, s.Reload(context.Background()))

    assert.Equal(t, 0, s.SelectedCount())
    assert.Equal(t, model.SeatOccupied, s.SeatState(seat(t, "C1")))
}

func TestSelectionSnapshot(t *testing.T) {
    s := newTestSession(newFakeStore())
    require.NoError(t, s.ChooseShowtime(context.Background(), "Frankenstein", "19:00", "Sala 1"))
    require.NoError(t, s.ToggleSeat(seat(t, "B1")))
    require.NoError(t, s.ToggleSeat(seat(t, "A3")))

    sel := s.Selection()
    assert.Equal(t, "Frankenstein", sel.MovieTitle)
    assert.Equal(t, model.ShowtimeKey("Frankenstein_19:00"), sel.Key)
    assert.Equal(t, []string{"A3", "B1"}, model.SeatLabels(sel.Seats))
    assert.Equal(t, uint32(850), sel.UnitPriceCents)

    // Later session changes must not leak into the snapshot.
    require.NoError(t, s.ToggleSeat(seat(t, "D4")))
    assert.Len(t, sel.Seats, 2)
}

func TestResetClearsFlow(t *testing.T) {
    s := newTestSession(newFakeStore())
    require.NoError(t, s.ChooseShowtime(context.Background(), "Avatar", "19:00", "Sala 1"))
    require.NoError(t, s.ToggleSeat(seat(t, "A1")))

    s.Reset()
    assert.Equal(t, StateNoShowtime, s.State())
    assert.Equal(t, 0, s.SelectedCount())
    assert.ErrorIs(t, s.ToggleSeat(seat(t, "A1")), ErrNoShowtime)
}
