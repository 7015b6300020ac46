package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheater_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name           string
		theaterName    string
		rows           int
		seatsPerRow    int
		accessibleRows []int
		wantErr        error
	}{
		{
			name:           "empty name",
			theaterName:    "",
			rows:           15,
			seatsPerRow:    10,
			accessibleRows: []int{6},
			wantErr:        ErrMissingName,
		},
		{
			name:           "blank name",
			theaterName:    "   ",
			rows:           15,
			seatsPerRow:    10,
			accessibleRows: []int{6},
			wantErr:        ErrMissingName,
		},
		{
			name:        "nil accessible rows",
			theaterName: "Roxy",
			rows:        15,
			seatsPerRow: 10,
			wantErr:     ErrNoAccessibleRows,
		},
		{
			name:           "empty accessible rows",
			theaterName:    "Roxy",
			rows:           15,
			seatsPerRow:    10,
			accessibleRows: []int{},
			wantErr:        ErrNoAccessibleRows,
		},
		{
			name:           "zero seats per row",
			theaterName:    "Roxy",
			rows:           15,
			seatsPerRow:    0,
			accessibleRows: []int{6},
			wantErr:        ErrInvalidSeatsPerRow,
		},
		{
			name:           "more seats than letters",
			theaterName:    "Roxy",
			rows:           15,
			seatsPerRow:    27,
			accessibleRows: []int{6},
			wantErr:        ErrInvalidSeatsPerRow,
		},
		{
			name:           "accessible row beyond last row",
			theaterName:    "Roxy",
			rows:           15,
			seatsPerRow:    10,
			accessibleRows: []int{6, 16},
			wantErr:        ErrAccessibleRowOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theater, err := NewTheater(tt.theaterName, tt.rows, tt.seatsPerRow, tt.accessibleRows)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, theater)
		})
	}
}

func TestNewTheater_BuildsRows(t *testing.T) {
	accessible := []int{6, 10}
	theater, err := NewTheater("Roxy", 15, 10, accessible)
	require.NoError(t, err)

	assert.Equal(t, "Roxy", theater.Name())
	assert.Equal(t, 15, theater.TotalRows())
	assert.Equal(t, 10, theater.SeatsPerRow())
	assert.Equal(t, []int{6, 10}, theater.AccessibleRows())

	for i, row := range theater.Rows() {
		assert.Equal(t, i+1, row.Number())
		assert.Equal(t, row.Number() == 6 || row.Number() == 10, row.IsAccessible(), "row %d", row.Number())
		assert.Equal(t, 10, row.SeatCount())
	}

	accessible[0] = 1
	assert.Equal(t, []int{6, 10}, theater.AccessibleRows())
	assert.Same(t, theater.Rows()[6], theater.Row(7))
	assert.Nil(t, theater.Row(0))
	assert.Nil(t, theater.Row(16))
}

func TestTheater_String(t *testing.T) {
	theater, err := NewTheater("Roxy", 12, 4, []int{10})
	require.NoError(t, err)

	theater.Row(2).Seat(1).Reserve("Amy")

	lines := strings.Split(strings.TrimSuffix(theater.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, " 1 _ _ _ _ ", lines[0])
	assert.Equal(t, " 2 _ X _ _ ", lines[1])
	assert.Equal(t, "10 = = = = ", lines[9])
	assert.Equal(t, "12 _ _ _ _ ", lines[11])
}
