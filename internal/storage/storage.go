package storage

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"seatBooker/internal/booking"
	"seatBooker/internal/models"
)

// TimestampLayout is how ledger timestamps are written.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

// Header is the first ledger row.
var Header = []string{"Timestamp", "User Code", "Name", "Mobile", "Selected Seats"}

// NewEntry turns a booking row into the ledger entry persisted for it.
// Each entry holds exactly one seat.
func NewEntry(row models.BookingRow, ts time.Time) models.LedgerEntry {
	return models.LedgerEntry{
		Timestamp: ts,
		UserCode:  row.UserCode,
		Name:      row.Name,
		Mobile:    row.Mobile,
		Seats:     strconv.Itoa(row.Seat),
	}
}

// Record renders an entry as spreadsheet cells in Header order.
func Record(e models.LedgerEntry) []string {
	return []string{
		e.Timestamp.Format(TimestampLayout),
		e.UserCode,
		e.Name,
		e.Mobile,
		e.Seats,
	}
}

// ParseSeatCells reads seat numbers from "Selected Seats" cells. Cells may
// hold comma-joined seats; fragments that are not all decimal digits are
// skipped. Digits of any script count.
func ParseSeatCells(cells []string) []int {
	booked := make([]int, 0, len(cells))

	for _, cell := range cells {
		for _, frag := range strings.Split(cell, ",") {
			frag = strings.TrimSpace(frag)
			if !isDigits(frag) {
				continue
			}

			n, err := strconv.Atoi(booking.Digits(frag))
			if err != nil {
				continue
			}
			booked = append(booked, n)
		}
	}

	return booked
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
