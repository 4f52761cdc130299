package models

import "time"

// BookingRow is one physical seat assignment.
type BookingRow struct {
	UserCode string `json:"user_code"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Seat     int    `json:"seat"`
}

// LedgerEntry is a persisted ledger row. Seats holds the raw "Selected Seats"
// cell, which older rows may store comma-joined.
type LedgerEntry struct {
	Timestamp time.Time `json:"timestamp"`
	UserCode  string    `json:"user_code"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Seats     string    `json:"seats"`
}
