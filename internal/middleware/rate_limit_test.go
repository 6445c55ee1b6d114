package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskdates/pkg/log"
)

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("throttles a chatty client", func(t *testing.T) {
		r := newTestRouter(New(log.NewNop(), 60)) // burst of 6

		var limited int
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)

			if i == 0 && w.Code != http.StatusOK {
				t.Fatalf("first request got %d, want 200", w.Code)
			}
			if w.Code == http.StatusTooManyRequests {
				limited++
			}
		}
		if limited == 0 {
			t.Errorf("expected some requests to be rate limited")
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := newTestRouter(New(log.NewNop(), 60))

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("fresh client got %d, want 200", w.Code)
		}
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		r := newTestRouter(New(log.NewNop(), 0))

		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d got %d, want 200", i, w.Code)
			}
		}
	})
}
