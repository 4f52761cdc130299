package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/health", New())
	router.Head("/health", New())

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		req := httptest.NewRequest(method, "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, method)
		if method == http.MethodGet {
			assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
		}
	}
}
