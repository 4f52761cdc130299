package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidMobile  = errors.New("invalid mobile number")
	ErrInvalidPairing = errors.New("cannot pair names/mobiles/seats")
)

// ValidationError reports input the client must fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errInvalidSeats(seats []int) error {
	s := make([]string, 0, len(seats))
	for _, seat := range seats {
		s = append(s, strconv.Itoa(seat))
	}

	return &ValidationError{Message: fmt.Sprintf("Invalid seats: [%s]", strings.Join(s, ", "))}
}
