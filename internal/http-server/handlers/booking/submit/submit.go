package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"seatBooker/internal/booking"
	"seatBooker/internal/lib/api/response"
	"seatBooker/internal/lib/logger/sl"
	"seatBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

var (
	errNotObject  = errors.New("booking entry must be an object")
	errSaveFailed = errors.New("could not save booking")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingAppender
type BookingAppender interface {
	AppendBooking(ctx context.Context, row models.BookingRow, ts time.Time) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Notify(to, name string, seat int, eventTime string) (string, error)
}

// New accepts {"users":[...]}, a bare list of bookings or a single booking.
// Bookings are processed in order; rows appended before a failure stay in
// the ledger.
func New(log *slog.Logger, ledger BookingAppender, notifier Notifier, eventTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.submit.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var payload any

		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		entries, err := bookingsOf(payload)
		if err != nil {
			responseFailed(w, r, log, err)
			return
		}

		if len(entries) == 0 {
			log.Error("no bookings in request")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(booking.ErrFieldsRequired.Message))
			return
		}

		ts := time.Now()
		var confirmed []int

		for _, entry := range entries {
			raw, ok := entry.(map[string]any)
			if !ok {
				responseFailed(w, r, log, errNotObject)
				return
			}

			fields := booking.Normalize(raw)

			if err = fields.Validate(); err != nil {
				var validationErr *booking.ValidationError
				if errors.As(err, &validationErr) {
					log.Error("invalid request", sl.Err(err))
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, response.Error(validationErr.Message))
					return
				}

				responseFailed(w, r, log, err)
				return
			}

			rows, err := booking.Pair(fields)
			if err != nil {
				responseFailed(w, r, log, err)
				return
			}

			for _, row := range rows {
				if err = ledger.AppendBooking(r.Context(), row, ts); err != nil {
					responseFailed(w, r, log, fmt.Errorf("%w: %w", errSaveFailed, err))
					return
				}

				confirmed = append(confirmed, row.Seat)

				sid, err := notifier.Notify(row.Mobile, row.Name, row.Seat, eventTime)
				if err != nil {
					log.Error("failed to send notification", slog.Int("seat", row.Seat), sl.Err(err))
					continue
				}

				log.Info("notification sent", slog.Int("seat", row.Seat), slog.String("sid", sid))
			}
		}

		log.Info("seats booked", slog.Any("seats", confirmed))

		responseOK(w, r, confirmed)
	}
}

func bookingsOf(payload any) ([]any, error) {
	switch p := payload.(type) {
	case nil:
		return []any{map[string]any{}}, nil
	case []any:
		return p, nil
	case map[string]any:
		users, ok := p["users"]
		if !ok {
			return []any{p}, nil
		}

		list, ok := users.([]any)
		if !ok {
			return nil, errors.New("users must be a list")
		}

		return list, nil
	default:
		return nil, errNotObject
	}
}

func responseFailed(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.Error("failed to book seats", sl.Err(err))

	// The response carries only the sentinel text; the full chain is logged.
	msg := err.Error()
	for _, sentinel := range []error{booking.ErrInvalidMobile, booking.ErrInvalidPairing, errSaveFailed} {
		if errors.Is(err, sentinel) {
			msg = sentinel.Error()
		}
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error(fmt.Sprintf("Failed: %s", msg)))
}

func responseOK(w http.ResponseWriter, r *http.Request, seats []int) {
	s := make([]string, 0, len(seats))
	for _, seat := range seats {
		s = append(s, strconv.Itoa(seat))
	}

	render.JSON(w, r, response.OK(
		fmt.Sprintf("Thank you for registering! Seat(s) %s confirmed.", strings.Join(s, ", ")),
	))
}
