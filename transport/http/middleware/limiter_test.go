package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	otl := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), otl))

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := call("203.0.113.7")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	assert.Equal(t, http.StatusOK, call("203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.7").Code)
	assert.Equal(t, http.StatusOK, call("198.51.100.2").Code)

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, call("203.0.113.7").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}
