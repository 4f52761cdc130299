package form

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"seatBooker/internal/lib/api/response"
	"seatBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

type pageData struct {
	SeatCount int
	Seats     []int
}

// New renders the booking form with seats numbered 1..seatCount.
func New(log *slog.Logger, seatCount int) http.HandlerFunc {
	data := pageData{SeatCount: seatCount, Seats: make([]int, 0, seatCount)}
	for i := 1; i <= seatCount; i++ {
		data.Seats = append(data.Seats, i)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.form.New"

		var buf bytes.Buffer
		if err := page.Execute(&buf, data); err != nil {
			log.Error("failed to render form", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render form"))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
