package qr

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"seatBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRHandler(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), "https://hitech-seat-booking.onrender.com/")

	req := httptest.NewRequest(http.MethodGet, "/qr", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 100)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestQRHandlerTrimsTrailingSlashes(t *testing.T) {
	t.Parallel()

	a := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), "https://example.org//").ServeHTTP(a, httptest.NewRequest(http.MethodGet, "/qr", nil))

	b := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), "https://example.org").ServeHTTP(b, httptest.NewRequest(http.MethodGet, "/qr", nil))

	assert.Equal(t, b.Body.Bytes(), a.Body.Bytes())
}
