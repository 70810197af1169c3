package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stockguard/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNoop(), 0))

	t.Run("generates an id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Header().Get(RequestIDHeader) == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled when limit is zero", func(t *testing.T) {
		r := newEngine(New(log.NewNoop(), 0))

		for i := 0; i < 100; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("rejects a burst above the limit", func(t *testing.T) {
		r := newEngine(New(log.NewNoop(), 10)) // burst of 1

		var limited bool
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code == http.StatusTooManyRequests {
				limited = true
				break
			}
		}
		if !limited {
			t.Error("expected at least one 429 within the burst")
		}
	})
}
