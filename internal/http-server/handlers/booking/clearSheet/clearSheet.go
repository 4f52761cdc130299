package clearSheet

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"seatBooker/internal/lib/api/response"
	"seatBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const TokenHeader = "X-CLEAR-TOKEN"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LedgerClearer
type LedgerClearer interface {
	ClearAll(ctx context.Context) error
}

// New wipes every ledger row below the header. When token is empty the
// header check is skipped.
func New(log *slog.Logger, ledger LedgerClearer, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.clearSheet.New"

		log := log.With(slog.String("op", op))

		if token != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(TokenHeader)), []byte(token)) != 1 {
			log.Warn("unauthorized clear attempt", slog.String("remote_addr", r.RemoteAddr))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		if err := ledger.ClearAll(r.Context()); err != nil {
			log.Error("failed to clear ledger", sl.Err(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log.Info("ledger cleared")

		render.JSON(w, r, response.OK("Sheet cleared"))
	}
}
