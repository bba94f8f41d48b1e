package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin gets headers", func(t *testing.T) {
		handler := CORS([]string{"https://events.example.com"}, okHandler())

		req := httptest.NewRequest(http.MethodGet, "/events/home", nil)
		req.Header.Set("Origin", "https://events.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://events.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rr.Header().Get("Vary"))
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		handler := CORS([]string{"https://events.example.com"}, okHandler())

		req := httptest.NewRequest(http.MethodGet, "/events/home", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"}, okHandler())

		req := httptest.NewRequest(http.MethodGet, "/events/home", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "https://anywhere.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered with 204", func(t *testing.T) {
		handler := CORS([]string{"https://events.example.com"}, okHandler())

		req := httptest.NewRequest(http.MethodOptions, "/events", nil)
		req.Header.Set("Origin", "https://events.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	})

	t.Run("trailing slash in config is normalised", func(t *testing.T) {
		handler := CORS([]string{"https://events.example.com/"}, okHandler())

		req := httptest.NewRequest(http.MethodGet, "/events/home", nil)
		req.Header.Set("Origin", "https://events.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "https://events.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
