package booking

import "github.com/cinemapro/booking-api/internal/model"

// DeriveSeatState computes the presentation state of one seat from the
// remote occupancy set and the local selection set.  Remote occupancy
// always wins: a seat present in both sets is Occupied, never Selected.
// The function is pure; seat states are re-derived from the two sets on
// every change and never cached where they could desync.
func DeriveSeatState(id model.SeatID, occupied, selected map[model.SeatID]struct{}) model.SeatState {
    if _, ok := occupied[id]; ok {
        return model.SeatOccupied
    }
    if _, ok := selected[id]; ok {
        return model.SeatSelected
    }
    return model.SeatFree
}

// SeatMap is the full derived grid for one showtime: every seat of the
// layout with its current state.
type SeatMap struct {
    Layout model.HallLayout
    States map[model.SeatID]model.SeatState
}

// BuildSeatMap derives the state of every seat in the layout.
func BuildSeatMap(layout model.HallLayout, occupied, selected map[model.SeatID]struct{}) SeatMap {
    states := make(map[model.SeatID]model.SeatState, layout.Rows*layout.Columns)
    for _, id := range layout.Seats() {
        states[id] = DeriveSeatState(id, occupied, selected)
    }
    return SeatMap{Layout: layout, States: states}
}
