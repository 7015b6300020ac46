package usecase

import (
	"slices"
	"strconv"
	"strings"

	"theater-reservation/internal/data/entity"
	"theater-reservation/internal/dto/response"
)

// Allocator picks a row and seats for a party. It never performs I/O and
// never locks; callers serialize access to the theater.
type Allocator struct {
	// contiguous fills the exact free run found during row selection.
	// When false, the first count free seats of the chosen row are filled.
	contiguous bool
}

func NewAllocator(contiguous bool) *Allocator {
	return &Allocator{contiguous: contiguous}
}

// RankRows returns the rows whose accessibility equals accessible, ordered by
// distance from the center row (totalRows/2). Ties keep row-number order.
func (a *Allocator) RankRows(t *entity.Theater, accessible bool) []*entity.Row {
	center := t.TotalRows() / 2

	candidates := make([]*entity.Row, 0, t.TotalRows())
	for _, row := range t.Rows() {
		if row.IsAccessible() == accessible {
			candidates = append(candidates, row)
		}
	}

	slices.SortStableFunc(candidates, func(x, y *entity.Row) int {
		return distance(x.Number(), center) - distance(y.Number(), center)
	})

	return candidates
}

// ReserveSeats reserves count seats for name in the best row. On any
// rejection the theater is left exactly as it was.
func (a *Allocator) ReserveSeats(t *entity.Theater, count int, name string, accessible bool) response.Outcome {
	outcome := response.Outcome{
		Theater:     t.Name(),
		Count:       count,
		Name:        name,
		SeatsPerRow: t.SeatsPerRow(),
	}

	if count <= 0 {
		outcome.Reason = response.ReasonInvalidCount
		return outcome
	}

	if count > t.SeatsPerRow() {
		outcome.Reason = response.ReasonExceedsCapacity
		return outcome
	}

	chosen, start := a.selectRow(t, count, accessible)
	if chosen == nil {
		outcome.Reason = response.ReasonNoSuitableRow
		return outcome
	}

	seats, ok := fill(chosen, start, count, name)
	if !ok {
		outcome.Reason = response.ReasonInsufficientSeats
		return outcome
	}

	outcome.Row = chosen.Number()
	outcome.Seats = seats
	return outcome
}

// selectRow returns the first ranked row that can seat count and the index
// the fill starts from. In contiguous mode the row needs count adjacent free
// seats; otherwise any count free seats qualify and the fill starts at 0.
func (a *Allocator) selectRow(t *entity.Theater, count int, accessible bool) (*entity.Row, int) {
	for _, row := range a.RankRows(t, accessible) {
		if !a.contiguous {
			if row.FreeCount() >= count {
				return row, 0
			}
			continue
		}

		if start := FindContiguousRun(row, count); start >= 0 {
			return row, start
		}
	}
	return nil, -1
}

// FindContiguousRun returns the index of the leftmost seat starting a run of
// count adjacent free seats, or -1 when the row has no such run.
func FindContiguousRun(row *entity.Row, count int) int {
	if count <= 0 {
		return -1
	}

	run := 0
	for i := 0; i < row.SeatCount(); i++ {
		if !row.Seat(i).IsFree() {
			run = 0
			continue
		}
		run++
		if run == count {
			return i - count + 1
		}
	}
	return -1
}

// fill reserves the first count free seats at or after start. If fewer than
// count could be filled, every seat taken by this call is released again.
func fill(row *entity.Row, start, count int, name string) ([]string, bool) {
	filled := make([]string, 0, count)
	for i := start; i < row.SeatCount() && len(filled) < count; i++ {
		seat := row.Seat(i)
		if seat.IsFree() {
			seat.Reserve(name)
			filled = append(filled, seat.ID())
		}
	}

	if len(filled) < count {
		for _, id := range filled {
			row.Release(id)
		}
		return nil, false
	}

	return filled, true
}

// IsValidSeatCount reports whether input parses to an integer in 1..totalRows.
// The upper bound is the row count, not the seats per row.
func IsValidSeatCount(t *entity.Theater, input string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return n > 0 && n <= t.TotalRows()
}

// IsValidNumberForReservation reports whether count fits in a single row.
func IsValidNumberForReservation(t *entity.Theater, count int) bool {
	return count > 0 && count <= t.SeatsPerRow()
}

func distance(rowNumber, center int) int {
	if rowNumber > center {
		return rowNumber - center
	}
	return center - rowNumber
}
