package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseSeatID(t *testing.T) {
    id, err := ParseSeatID("D2")
    require.NoError(t, err)
    assert.Equal(t, SeatID{Row: 'D', Column: 2}, id)
    assert.Equal(t, "D2", id.String())

    id, err = ParseSeatID("a12")
    require.NoError(t, err)
    assert.Equal(t, SeatID{Row: 'A', Column: 12}, id)

    for _, bad := range []string{"", "A", "7", "A0", "A-1", "AA", "1A", "Ñ2"} {
        _, err := ParseSeatID(bad)
        assert.ErrorIs(t, err, ErrInvalidSeatID, "input %q", bad)
    }
}

func TestSeatOrdering(t *testing.T) {
    labels := SeatLabels([]SeatID{{'B', 1}, {'A', 10}, {'A', 2}})
    assert.Equal(t, []string{"A2", "A10", "B1"}, labels)
}

func TestNewShowtimeKey(t *testing.T) {
    assert.Equal(t, ShowtimeKey("Frankenstein_19:00"), NewShowtimeKey("Frankenstein", "19:00"))
    assert.Equal(t, ShowtimeKey("Wicked-For-Good_22:00"), NewShowtimeKey("Wicked For Good", "22:00"))
    assert.Equal(t, ShowtimeKey("Black-Phone-2_16:00"), NewShowtimeKey("  Black  Phone 2 ", "16:00"))

    // Same pair always maps to the same key.
    assert.Equal(t, NewShowtimeKey("Avatar", "19:00"), NewShowtimeKey("Avatar", "19:00"))

    // Distinct pairs never collide.
    keys := map[ShowtimeKey]bool{}
    for _, title := range []string{"Avatar", "Wicked For Good", "Black Phone 2"} {
        for _, tm := range []string{"16:00", "19:00", "22:00"} {
            k := NewShowtimeKey(title, tm)
            assert.False(t, keys[k], "duplicate key %s", k)
            keys[k] = true
        }
    }
}

func TestShowtimeRecord(t *testing.T) {
    rec := EmptyShowtimeRecord()
    assert.False(t, rec.IsOccupied(SeatID{'A', 1}))
    rec.Occupied[SeatID{'A', 1}] = struct{}{}
    assert.True(t, rec.IsOccupied(SeatID{'A', 1}))
}
