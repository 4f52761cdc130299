package storage

import (
	"testing"
	"time"

	"seatBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseSeatCells(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cells    []string
		expected []int
	}{
		{name: "Mixed cells", cells: []string{"5", "7,8", ""}, expected: []int{5, 7, 8}},
		{name: "Spaces", cells: []string{" 12 , 13 "}, expected: []int{12, 13}},
		{name: "Non numeric fragments", cells: []string{"A1", "9,x", "-3", "4.5"}, expected: []int{9}},
		{name: "Empty", cells: nil, expected: []int{}},
		{name: "Devanagari", cells: []string{"१२", "४,5"}, expected: []int{12, 4, 5}},
		{name: "Superscript skipped", cells: []string{"²", "3"}, expected: []int{3}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, ParseSeatCells(tc.cells))
		})
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 1, 31, 19, 0, 5, 0, time.UTC)
	row := models.BookingRow{UserCode: "A1", Name: "Asha", Mobile: "9876543210", Seat: 10}

	e := NewEntry(row, ts)
	assert.Equal(t, "10", e.Seats)
	assert.Equal(t, ts, e.Timestamp)
	assert.Equal(t, []string{"2026-01-31 19:00:05", "A1", "Asha", "9876543210", "10"}, Record(e))
}
