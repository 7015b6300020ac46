package entity

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	MinSeatsPerRow = 1
	MaxSeatsPerRow = 26
)

var (
	ErrMissingName             = errors.New("theater name is missing")
	ErrNoAccessibleRows        = errors.New("theater must have at least one accessible row")
	ErrInvalidSeatsPerRow      = errors.New("invalid number of seats in a row")
	ErrAccessibleRowOutOfRange = errors.New("accessible row is outside the theater")
)

// Theater is the aggregate root: it owns its rows, which own their seats.
type Theater struct {
	name           string
	rows           []*Row
	accessibleRows []int
}

// NewTheater builds totalRows rows numbered 1..totalRows. A row is accessible
// iff its number appears in accessibleRows.
func NewTheater(name string, totalRows, seatsPerRow int, accessibleRows []int) (*Theater, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}

	if len(accessibleRows) == 0 {
		return nil, ErrNoAccessibleRows
	}

	if seatsPerRow < MinSeatsPerRow || seatsPerRow > MaxSeatsPerRow {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidSeatsPerRow, seatsPerRow, MinSeatsPerRow, MaxSeatsPerRow)
	}

	for _, n := range accessibleRows {
		if n < 1 || n > totalRows {
			return nil, fmt.Errorf("%w: row %d of %d", ErrAccessibleRowOutOfRange, n, totalRows)
		}
	}

	rows := make([]*Row, 0, totalRows)
	for n := 1; n <= totalRows; n++ {
		rows = append(rows, NewRow(n, seatsPerRow, slices.Contains(accessibleRows, n)))
	}

	return &Theater{
		name:           name,
		rows:           rows,
		accessibleRows: slices.Clone(accessibleRows),
	}, nil
}

func (t *Theater) Name() string {
	return t.name
}

func (t *Theater) TotalRows() int {
	return len(t.rows)
}

// SeatsPerRow is taken from the first row; 0 when the theater has no rows.
func (t *Theater) SeatsPerRow() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[0].SeatCount()
}

func (t *Theater) Rows() []*Row {
	return t.rows
}

// Row returns the row with the given 1-based number, or nil.
func (t *Theater) Row(number int) *Row {
	if number < 1 || number > len(t.rows) {
		return nil
	}
	return t.rows[number-1]
}

func (t *Theater) AccessibleRows() []int {
	return slices.Clone(t.accessibleRows)
}

// String renders the seat map, one row per line, each prefixed with its
// row number right-aligned to two columns.
func (t *Theater) String() string {
	var b strings.Builder
	for _, row := range t.rows {
		fmt.Fprintf(&b, "%2d %s\n", row.Number(), row.String())
	}
	return b.String()
}
