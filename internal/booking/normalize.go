package booking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// digitRun matches decimal digits of any script, such as Devanagari.
var digitRun = regexp.MustCompile(`\p{Nd}+`)

// maxExactInt bounds the float64 values that still name one integer.
const maxExactInt = 1 << 53

// Fields is the canonical form of one submitted booking.
type Fields struct {
	UserCode string
	Names    []string `validate:"required,min=1"`
	Mobiles  []string `validate:"required,min=1"`
	Seats    []int    `validate:"required,min=1"`
}

// Normalize canonicalizes one decoded JSON booking object.
func Normalize(raw map[string]any) Fields {
	return Fields{
		UserCode: UserCode(raw["user_code"]),
		Names:    Names(raw["name"]),
		Mobiles:  Mobiles(raw["mobile"]),
		Seats:    Seats(raw["seats"]),
	}
}

// UserCode renders the submitted code as a trimmed string. A missing code is empty.
func UserCode(v any) string {
	s, ok := scalar(v)
	if !ok {
		return ""
	}

	return strings.TrimSpace(s)
}

// Seats extracts every digit run from a seat list or string, in order.
// Duplicates are kept.
func Seats(v any) []int {
	var seats []int

	switch t := v.(type) {
	case string:
		seats = append(seats, extractInts(t)...)
	case []any:
		for _, item := range t {
			switch it := item.(type) {
			case float64:
				if it == math.Trunc(it) && math.Abs(it) <= maxExactInt {
					seats = append(seats, int(it))
				}
			case int:
				seats = append(seats, it)
			case string:
				seats = append(seats, extractInts(it)...)
			}
		}
	}

	return seats
}

// Mobiles splits, trims and reduces each mobile entry to its digits.
// Entries without digits are dropped.
func Mobiles(v any) []string {
	var mobiles []string

	for _, part := range parts(v) {
		if d := Digits(part); d != "" {
			mobiles = append(mobiles, d)
		}
	}

	return mobiles
}

// Names splits and trims names, dropping empty entries.
func Names(v any) []string {
	var names []string

	for _, part := range parts(v) {
		if part != "" {
			names = append(names, part)
		}
	}

	return names
}

// Digits keeps the decimal digits of s, rewritten as ASCII.
func Digits(s string) string {
	return toASCII(strings.Join(digitRun.FindAllString(s, -1), ""))
}

// toASCII maps decimal digits of any script to 0-9. Each script's digits
// are contiguous code points starting at zero, and some scripts stack
// several such sets back to back.
func toASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII {
			return r
		}

		zero := r
		for unicode.IsDigit(zero - 1) {
			zero--
		}

		return '0' + (r-zero)%10
	}, s)
}

func extractInts(s string) []int {
	var out []int

	for _, m := range digitRun.FindAllString(s, -1) {
		n, err := strconv.Atoi(toASCII(m))
		if err != nil {
			// overflowing digit runs cannot name a seat
			continue
		}
		out = append(out, n)
	}

	return out
}

// parts returns trimmed elements of a list, or of a comma-split string.
func parts(v any) []string {
	var out []string

	switch t := v.(type) {
	case string:
		for _, p := range strings.Split(t, ",") {
			out = append(out, strings.TrimSpace(p))
		}
	case []any:
		for _, item := range t {
			s, ok := scalar(item)
			if !ok {
				continue
			}
			out = append(out, strings.TrimSpace(s))
		}
	}

	return out
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
