package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour)
	defer limiter.Stop()

	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("first request should pass")
	}
	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("second request should pass")
	}
	if limiter.Allow("1.2.3.4") {
		t.Errorf("third request should be throttled")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Errorf("other clients keep their own bucket")
	}
}

func TestRateLimitMiddleware_Throttles(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter, zap.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/loan/banks/sbi", nil)
	req.RemoteAddr = "9.9.9.9:12345"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second request expected 429, got %d", rr.Code)
	}
}
