package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tutorials/config"
	"tutorials/infras/otel/mocks"
	"tutorials/shared/cache"
	cacheMocks "tutorials/shared/cache/mocks"
	"tutorials/shared/constant"
	"tutorials/transport/http/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func newLimiter(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

	return mw.RateLimit()(okHandler), mockCache
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		handler, _ := newLimiter(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tutorials", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request starts the window", func(t *testing.T) {
		handler, mockCache := newLimiter(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.1:unknown", 60).Return(int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tutorials", nil)
		req.RemoteAddr = "192.0.2.1:51234"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		handler, mockCache := newLimiter(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:unknown", 60).Return(int64(3), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tutorials", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		handler, mockCache := newLimiter(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tutorials", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	})

	t.Run("disabled cache lets the request through", func(t *testing.T) {
		handler, mockCache := newLimiter(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), cache.Nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tutorials", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitWithRedis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))
	handler := mw.RateLimit()(okHandler)

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/tutorials", nil)
		req.RemoteAddr = "198.51.100.4:4000"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		limited atomic.Int32
	)

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			switch send() {
			case http.StatusOK:
				allowed.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(5), allowed.Load())
	assert.Equal(t, int32(15), limited.Load())

	// later hits do not extend the window
	server.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, send())
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("kept when provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestLoggerAndTracing(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(mw.Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
