package bookedSeats

import (
	"context"
	"log/slog"
	"net/http"

	"seatBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

// BookedSeatsResponse is always sent with 200; Error carries a failed ledger read.
type BookedSeatsResponse struct {
	Booked []int  `json:"booked"`
	Error  string `json:"error,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatsReader
type SeatsReader interface {
	OccupiedSeats(ctx context.Context) ([]int, error)
}

func New(log *slog.Logger, seats SeatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.bookedSeats.New"

		log := log.With(slog.String("op", op))

		booked, err := seats.OccupiedSeats(r.Context())
		if err != nil {
			log.Error("failed to read booked seats", sl.Err(err))
			render.JSON(w, r, BookedSeatsResponse{
				Booked: []int{},
				Error:  err.Error(),
			})
			return
		}

		log.Debug("booked seats read", slog.Int("count", len(booked)))

		responseOK(w, r, booked)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booked []int) {
	if booked == nil {
		booked = []int{}
	}

	render.JSON(w, r, BookedSeatsResponse{
		Booked: booked,
	})
}
