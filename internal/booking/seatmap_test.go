package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/cinemapro/booking-api/internal/model"
)

func seat(t *testing.T, s string) model.SeatID {
    t.Helper()
    id, err := model.ParseSeatID(s)
    if err != nil {
        t.Fatalf("bad seat literal %q: %v", s, err)
    }
    return id
}

func seatSet(t *testing.T, seats ...string) map[model.SeatID]struct{} {
    t.Helper()
    m := make(map[model.SeatID]struct{}, len(seats))
    for _, s := range seats {
        m[seat(t, s)] = struct{}{}
    }
    return m
}

func TestDeriveSeatState(t *testing.T) {
    occupied := seatSet(t, "A1", "C3")
    selected := seatSet(t, "B2")

    assert.Equal(t, model.SeatOccupied, DeriveSeatState(seat(t, "A1"), occupied, selected))
    assert.Equal(t, model.SeatSelected, DeriveSeatState(seat(t, "B2"), occupied, selected))
    assert.Equal(t, model.SeatFree, DeriveSeatState(seat(t, "D4"), occupied, selected))
}

// A seat present in both sets must derive as Occupied; remote occupancy
// always wins over local selection.
func TestDeriveSeatStateOccupiedWins(t *testing.T) {
    for _, id := range model.DefaultHallLayout().Seats() {
        both := map[model.SeatID]struct{}{id: {}}
        assert.Equal(t, model.SeatOccupied, DeriveSeatState(id, both, both),
            "seat %s in both sets must be occupied, never selected", id)
    }
}

func TestBuildSeatMap(t *testing.T) {
    layout := model.DefaultHallLayout()
    m := BuildSeatMap(layout, seatSet(t, "A1"), seatSet(t, "B1"))

    assert.Len(t, m.States, 24)
    assert.Equal(t, model.SeatOccupied, m.States[seat(t, "A1")])
    assert.Equal(t, model.SeatSelected, m.States[seat(t, "B1")])
    assert.Equal(t, model.SeatFree, m.States[seat(t, "D6")])
}

func TestHallLayoutSeats(t *testing.T) {
    layout := model.HallLayout{Rows: 2, Columns: 3}
    seats := layout.Seats()

    assert.Len(t, seats, 6)
    assert.Equal(t, "A1", seats[0].String())
    assert.Equal(t, "B3", seats[5].String())
    assert.True(t, layout.Contains(seat(t, "B3")))
    assert.False(t, layout.Contains(seat(t, "C1")))
    assert.False(t, layout.Contains(seat(t, "A4")))
}
