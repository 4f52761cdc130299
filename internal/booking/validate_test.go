package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Fields{Names: []string{"A"}, Mobiles: []string{"9876543210"}, Seats: []int{1, 105}}

	testCases := []struct {
		name        string
		fields      Fields
		expectedMsg string
	}{
		{name: "Valid", fields: valid},
		{name: "Missing names", fields: Fields{Mobiles: valid.Mobiles, Seats: valid.Seats}, expectedMsg: "Name, Mobile, Seat required"},
		{name: "Empty mobiles", fields: Fields{Names: valid.Names, Mobiles: []string{}, Seats: valid.Seats}, expectedMsg: "Name, Mobile, Seat required"},
		{name: "Missing seats", fields: Fields{Names: valid.Names, Mobiles: valid.Mobiles}, expectedMsg: "Name, Mobile, Seat required"},
		{name: "Seat above range", fields: Fields{Names: valid.Names, Mobiles: valid.Mobiles, Seats: []int{10, 106}}, expectedMsg: "Invalid seats: [106]"},
		{name: "Seats outside range", fields: Fields{Names: valid.Names, Mobiles: valid.Mobiles, Seats: []int{0, 5, 200}}, expectedMsg: "Invalid seats: [0, 200]"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.fields.Validate()
			if tc.expectedMsg == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.expectedMsg, validationErr.Message)
		})
	}
}

func TestInvalidSeats(t *testing.T) {
	t.Parallel()

	assert.Nil(t, InvalidSeats([]int{1, 50, 105}))
	assert.Equal(t, []int{106}, InvalidSeats([]int{106}))
}
