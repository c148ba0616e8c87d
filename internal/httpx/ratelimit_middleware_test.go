package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimitMiddleware(ctx, 0.001, 2, false)
	handler := rl.Middleware(okHandler())

	request := func(addr string) int {
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2:1111"))
}

func TestRateLimitMiddleware_ForwardedForTrustedProxy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimitMiddleware(ctx, 1, 1, true)
	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	r.RemoteAddr = "10.0.0.1:4000"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", rl.clientKey(r))
}

func TestRateLimitMiddleware_ForwardedForIgnoredByDefault(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimitMiddleware(ctx, 0.001, 1, false)
	handler := rl.Middleware(okHandler())

	request := func(forwarded string) int {
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.RemoteAddr = "198.51.100.9:5555"
		r.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("203.0.113.1"))
	// rotating the header does not buy a fresh bucket
	assert.Equal(t, http.StatusTooManyRequests, request("203.0.113.2"))

	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	r.RemoteAddr = "198.51.100.9:5555"
	r.Header.Set("X-Forwarded-For", "203.0.113.3")
	assert.Equal(t, "198.51.100.9", rl.clientKey(r))
}

func TestRateLimitMiddleware_EvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimitMiddleware(ctx, 1, 1, false)
	rl.getLimiter("10.0.0.1")

	rl.evictIdle(time.Now())
	assert.Len(t, rl.limiters, 1)

	rl.evictIdle(time.Now().Add(rl.cleanup + time.Second))
	assert.Empty(t, rl.limiters)
}
