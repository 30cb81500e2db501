package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trhacknon/custom-devices/internal/config"
)

func TestRateLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limited := RateLimit(config.RateLimitConfig{Requests: 2, Window: time.Minute})(handler)

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/quote/pdf", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := send("192.0.2.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, w.Code)
		}
	}

	w := send("192.0.2.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("3rd request: expected status 429, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	// Another client has its own window
	if w := send("198.51.100.7:4321"); w.Code != http.StatusOK {
		t.Errorf("other IP: expected status 200, got %d", w.Code)
	}
}
