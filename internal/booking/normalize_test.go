package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected []int
	}{
		{name: "String", input: "12,45", expected: []int{12, 45}},
		{name: "List of numbers", input: []any{float64(12), float64(45)}, expected: []int{12, 45}},
		{name: "List of strings", input: []any{"12", "45"}, expected: []int{12, 45}},
		{name: "Mixed list", input: []any{float64(3), "seat 7 and 9"}, expected: []int{3, 7, 9}},
		{name: "Free text", input: "A12 / B45, c3", expected: []int{12, 45, 3}},
		{name: "Duplicates kept", input: "5,5,5", expected: []int{5, 5, 5}},
		{name: "Fractional number ignored", input: []any{10.5, float64(4)}, expected: []int{4}},
		{name: "Huge number ignored", input: []any{1e20, -1e20, float64(4)}, expected: []int{4}},
		{name: "Devanagari digits", input: "१२, ४५", expected: []int{12, 45}},
		{name: "Fullwidth digits in list", input: []any{"１０"}, expected: []int{10}},
		{name: "Nested list ignored", input: []any{[]any{"1"}, "2"}, expected: []int{2}},
		{name: "No digits", input: "none", expected: nil},
		{name: "Number not list", input: float64(12), expected: nil},
		{name: "Nil", input: nil, expected: nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Seats(tc.input))
		})
	}
}

func TestSeatsShapesAgree(t *testing.T) {
	t.Parallel()

	fromString := Seats("12,45")
	fromNumbers := Seats([]any{float64(12), float64(45)})
	fromStrings := Seats([]any{"12", "45"})

	assert.Equal(t, []int{12, 45}, fromString)
	assert.Equal(t, fromString, fromNumbers)
	assert.Equal(t, fromString, fromStrings)
}

func TestMobiles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "Single", input: "98765 43210", expected: []string{"9876543210"}},
		{name: "Comma joined", input: "9876543210, +91 99887-76655", expected: []string{"9876543210", "919988776655"}},
		{name: "List", input: []any{"9876543210", " 9988776655 "}, expected: []string{"9876543210", "9988776655"}},
		{name: "Numeric list element", input: []any{float64(9876543210)}, expected: []string{"9876543210"}},
		{name: "Empty elements dropped", input: "9876543210,,abc", expected: []string{"9876543210"}},
		{name: "Empty string", input: "", expected: nil},
		{name: "Unsupported shape", input: map[string]any{"m": "1"}, expected: nil},
		{name: "Devanagari", input: "९८७६५ ४३२१०", expected: []string{"9876543210"}},
		{name: "Bengali", input: "৯৮৭৬৫৪৩২১০", expected: []string{"9876543210"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Mobiles(tc.input))
		})
	}
}

func TestDigitsIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"9876543210", "919876543210", "12345", ""} {
		once := Digits(s)
		assert.Equal(t, s, once)
		assert.Equal(t, once, Digits(once))
	}

	assert.Equal(t, []string{"9876543210"}, Mobiles(Mobiles("9876543210")[0]))
}

func TestDigitsScripts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0123456789", Digits("०१२३४५६७८९"))
	assert.Equal(t, "0123456789", Digits("٠١٢٣٤٥٦٧٨٩"))
	// mathematical bold and double-struck digits sit back to back
	assert.Equal(t, "90", Digits("\U0001D7D7\U0001D7D8"))
	assert.Equal(t, "7", Digits("x7²"))
}

func TestNames(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "Single", input: "  Asha ", expected: []string{"Asha"}},
		{name: "Comma joined", input: "Asha, Ravi,,", expected: []string{"Asha", "Ravi"}},
		{name: "List", input: []any{"Asha", " ", "Ravi"}, expected: []string{"Asha", "Ravi"}},
		{name: "Blank", input: "   ", expected: nil},
		{name: "Number", input: float64(7), expected: nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Names(tc.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	f := Normalize(map[string]any{
		"user_code": " A1 ",
		"name":      "Asha,Ravi",
		"mobile":    "9876543210,9988776655",
		"seats":     []any{float64(10), float64(11)},
	})

	assert.Equal(t, Fields{
		UserCode: "A1",
		Names:    []string{"Asha", "Ravi"},
		Mobiles:  []string{"9876543210", "9988776655"},
		Seats:    []int{10, 11},
	}, f)

	assert.Equal(t, "42", Normalize(map[string]any{"user_code": float64(42)}).UserCode)
	assert.Equal(t, "", Normalize(map[string]any{}).UserCode)
}
