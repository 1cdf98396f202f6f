package model

import (
    "errors"
    "fmt"
    "sort"
    "strconv"
)

// SeatID identifies a single seat in a hall by row letter and 1-indexed
// column.  Its canonical string form is the row letter followed by the
// column number, e.g. "D2".  SeatID is a value type and is safe to use
// as a map key.
type SeatID struct {
    Row    byte // row letter, 'A'..'Z'
    Column int  // 1-indexed column number
}

// ErrInvalidSeatID is returned by ParseSeatID when the input does not
// have the canonical "<letter><number>" form.
var ErrInvalidSeatID = errors.New("invalid seat id")

// ParseSeatID parses the canonical string form of a seat id.  The row
// letter may be lower case; the column must be a positive integer.
func ParseSeatID(s string) (SeatID, error) {
    if len(s) < 2 {
        return SeatID{}, ErrInvalidSeatID
    }
    row := s[0]
    if row >= 'a' && row <= 'z' {
        row -= 32
    }
    if row < 'A' || row > 'Z' {
        return SeatID{}, ErrInvalidSeatID
    }
    col, err := strconv.Atoi(s[1:])
    if err != nil || col < 1 {
        return SeatID{}, ErrInvalidSeatID
    }
    return SeatID{Row: row, Column: col}, nil
}

// String returns the canonical form, e.g. "D2".
func (s SeatID) String() string {
    return fmt.Sprintf("%c%d", s.Row, s.Column)
}

// Less orders seats by row and then by column, giving the deterministic
// ordering used when listing seats on tickets and in responses.
func (s SeatID) Less(o SeatID) bool {
    if s.Row != o.Row {
        return s.Row < o.Row
    }
    return s.Column < o.Column
}

// SeatState is the derived presentation state of a seat.  It is never
// stored; it is recomputed from the remote occupancy set and the local
// selection set whenever either changes.
type SeatState int

const (
    SeatFree     SeatState = iota // not occupied, not selected
    SeatOccupied                  // present in the remote occupancy set
    SeatSelected                  // picked locally, not occupied remotely
)

// String returns a lower-case label for logging and JSON responses.
func (s SeatState) String() string {
    switch s {
    case SeatOccupied:
        return "occupied"
    case SeatSelected:
        return "selected"
    default:
        return "free"
    }
}

// HallLayout declares the seat grid of a hall as row and column counts.
// Rows are labelled 'A' upward.  The default storefront hall is 4 rows
// by 6 columns (24 seats).
type HallLayout struct {
    Rows    int `json:"rows"`
    Columns int `json:"columns"`
}

// DefaultHallLayout is the grid used when no layout is configured.
func DefaultHallLayout() HallLayout { return HallLayout{Rows: 4, Columns: 6} }

// Contains reports whether the seat falls inside the grid.
func (l HallLayout) Contains(id SeatID) bool {
    r := int(id.Row - 'A')
    return r >= 0 && r < l.Rows && id.Column >= 1 && id.Column <= l.Columns
}

// Seats enumerates every seat id in the grid, row by row.  The result is
// always freshly built so callers may modify it.
func (l HallLayout) Seats() []SeatID {
    out := make([]SeatID, 0, l.Rows*l.Columns)
    for r := 0; r < l.Rows; r++ {
        for c := 1; c <= l.Columns; c++ {
            out = append(out, SeatID{Row: byte('A' + r), Column: c})
        }
    }
    return out
}

// SortSeats sorts a slice of seat ids in row/column order, in place, and
// returns it for convenience.
func SortSeats(seats []SeatID) []SeatID {
    sort.Slice(seats, func(i, j int) bool { return seats[i].Less(seats[j]) })
    return seats
}

// SeatLabels converts a slice of seat ids to their canonical strings in
// row/column order.  Used for wire payloads and stored records.
func SeatLabels(seats []SeatID) []string {
    sorted := make([]SeatID, len(seats))
    copy(sorted, seats)
    SortSeats(sorted)
    labels := make([]string, len(sorted))
    for i, s := range sorted {
        labels[i] = s.String()
    }
    return labels
}
