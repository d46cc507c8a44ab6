package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsocial/trustd/internal/server/middleware/memory"
)

// Storage keeps rendered responses.
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached caches the handler's output in process memory.
func Cached(ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	return CachedWith(memory.NewStorage(), ttl, handler)
}

// CachedWith caches the handler's output in the given storage.
func CachedWith(storage Storage, ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content := storage.Get(r.RequestURI)
		if content != nil {
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content = c.Body.Bytes()

		storage.Set(r.RequestURI, content, ttl)

		_, _ = w.Write(content)
	}
}
