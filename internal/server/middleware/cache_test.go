package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	calls := 0

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"ok":true}`, w.Body.String())
	}

	require.Equal(t, 1, calls)
}

func TestCached_distinctURIs(t *testing.T) {
	calls := 0

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(r.RequestURI))
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/stats?limit=1", nil))
	require.Equal(t, "/stats?limit=1", w.Body.String())

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/stats?limit=2", nil))
	require.Equal(t, "/stats?limit=2", w.Body.String())

	require.Equal(t, 2, calls)
}
