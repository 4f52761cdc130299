package qr

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"seatBooker/internal/lib/api/response"
	"seatBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	qrcode "github.com/skip2/go-qrcode"
)

// moduleSize is the pixel width of one QR module; negative sizes tell
// go-qrcode to scale per module instead of per image.
const moduleSize = -10

// New serves a PNG QR code pointing at baseURL with trailing slashes removed.
func New(log *slog.Logger, baseURL string) http.HandlerFunc {
	target := strings.TrimRight(baseURL, "/")

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.qr.New"

		log := log.With(slog.String("op", op))

		png, err := qrcode.Encode(target, qrcode.Medium, moduleSize)
		if err != nil {
			log.Error("failed to render qr code", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render qr code"))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.WriteHeader(http.StatusOK)

		if _, err = w.Write(png); err != nil {
			log.Error("failed to write qr code", sl.Err(err))
		}
	}
}
