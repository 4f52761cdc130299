package booking

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MinSeat = 1
	MaxSeat = 105
)

var ErrFieldsRequired = &ValidationError{Message: "Name, Mobile, Seat required"}

var validate = validator.New()

// Validate checks that every field is present and every seat is inside the venue.
func (f Fields) Validate() error {
	if err := validate.Struct(f); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return ErrFieldsRequired
		}

		return err
	}

	if invalid := InvalidSeats(f.Seats); len(invalid) > 0 {
		return errInvalidSeats(invalid)
	}

	return nil
}

// InvalidSeats returns the seats outside [MinSeat, MaxSeat], in order.
func InvalidSeats(seats []int) []int {
	var invalid []int

	for _, s := range seats {
		if s < MinSeat || s > MaxSeat {
			invalid = append(invalid, s)
		}
	}

	return invalid
}
