package entity

import "strings"

const (
	firstSeatID = 'A'

	symbolReserved   = "X"
	symbolAccessible = "="
	symbolStandard   = "_"
)

// Row is an ordered, fixed-length sequence of seats, left to right.
// Row number 1 is nearest to the screen.
type Row struct {
	number     int
	accessible bool
	seats      []Seat
}

func NewRow(number, seatCount int, accessible bool) *Row {
	seats := make([]Seat, seatCount)
	for i := range seats {
		seats[i] = newSeat(firstSeatID + rune(i))
	}

	return &Row{
		number:     number,
		accessible: accessible,
		seats:      seats,
	}
}

func (r *Row) Number() int {
	return r.number
}

func (r *Row) IsAccessible() bool {
	return r.accessible
}

func (r *Row) SeatCount() int {
	return len(r.seats)
}

// Seat returns the seat at index i (0 = leftmost), or nil when out of range.
func (r *Row) Seat(i int) *Seat {
	if i < 0 || i >= len(r.seats) {
		return nil
	}
	return &r.seats[i]
}

// FreeCount returns how many seats in the row are unoccupied.
func (r *Row) FreeCount() int {
	free := 0
	for i := range r.seats {
		if r.seats[i].IsFree() {
			free++
		}
	}
	return free
}

// Release frees the seat with the given identifier. Unknown ids are ignored.
func (r *Row) Release(seatID string) {
	for i := range r.seats {
		if r.seats[i].ID() == seatID {
			r.seats[i].Release()
			return
		}
	}
}

// String renders one symbol per seat followed by a single space:
// "X" when occupied, "=" for a free seat in an accessible row, "_" otherwise.
func (r *Row) String() string {
	var b strings.Builder
	for i := range r.seats {
		switch {
		case !r.seats[i].IsFree():
			b.WriteString(symbolReserved)
		case r.accessible:
			b.WriteString(symbolAccessible)
		default:
			b.WriteString(symbolStandard)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
