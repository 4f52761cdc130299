package form

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"seatBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestFormHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), 105).ServeHTTP(rr, req)

	body := rr.Body.String()

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, body, `data-count="105"`)
	assert.Contains(t, body, `data-seat="1"`)
	assert.Contains(t, body, `data-seat="105"`)
	assert.NotContains(t, body, `data-seat="106"`)
}
