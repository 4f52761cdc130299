package booking

import (
	"fmt"

	"seatBooker/internal/models"
)

const minMobileLen = 10

// pairRule expands a booking into rows when its counts match.
type pairRule struct {
	name    string
	matches func(names, mobiles, seats int) bool
	pick    func(i int) (nameIdx, mobileIdx int)
}

// pairRules are tried in order; the first match wins.
var pairRules = []pairRule{
	{
		name:    "element-wise",
		matches: func(n, m, s int) bool { return n == s && m == s },
		pick:    func(i int) (int, int) { return i, i },
	},
	{
		name:    "broadcast name and mobile",
		matches: func(n, m, _ int) bool { return n == 1 && m == 1 },
		pick:    func(int) (int, int) { return 0, 0 },
	},
	{
		name:    "broadcast name",
		matches: func(n, m, s int) bool { return n == 1 && m == s },
		pick:    func(i int) (int, int) { return 0, i },
	},
	{
		name:    "broadcast mobile",
		matches: func(n, m, s int) bool { return m == 1 && n == s },
		pick:    func(i int) (int, int) { return i, 0 },
	},
}

// Pair expands normalized fields into one row per seat.
func Pair(f Fields) ([]models.BookingRow, error) {
	const op = "booking.Pair"

	for _, m := range f.Mobiles {
		if len(m) < minMobileLen {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidMobile)
		}
	}

	rule, ok := matchRule(len(f.Names), len(f.Mobiles), len(f.Seats))
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPairing)
	}

	rows := make([]models.BookingRow, 0, len(f.Seats))
	for i, seat := range f.Seats {
		ni, mi := rule.pick(i)
		rows = append(rows, models.BookingRow{
			UserCode: f.UserCode,
			Name:     f.Names[ni],
			Mobile:   f.Mobiles[mi],
			Seat:     seat,
		})
	}

	return rows, nil
}

func matchRule(names, mobiles, seats int) (pairRule, bool) {
	if seats == 0 {
		return pairRule{}, false
	}

	for _, r := range pairRules {
		if r.matches(names, mobiles, seats) {
			return r, true
		}
	}

	return pairRule{}, false
}
