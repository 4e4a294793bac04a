package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/config"
	"salonbooking/infras/otel/mocks"
	"salonbooking/shared/cache"
	"salonbooking/shared/message"
	"salonbooking/shared/store"
	"salonbooking/transport/http/middleware"
)

func newAppMiddleware(t *testing.T, mutate func(cfg *config.Config)) (middleware.AppMiddleware, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.App.Name = "salonbooking"
	cfg.Session.CookieName = "booking_session"

	if mutate != nil {
		mutate(cfg)
	}

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel())), mr
}

func TestBookingSession(t *testing.T) {
	existing := uuid.NewString()
	fromHeader := uuid.NewString()

	tests := []struct {
		name       string
		cookie     string
		header     string
		wantID     string
		wantIssued bool
	}{
		{name: "new visitor gets a cookie", wantIssued: true},
		{name: "cookie is reused", cookie: existing, wantID: existing},
		{name: "header wins over cookie", cookie: existing, header: fromHeader, wantID: fromHeader},
		{name: "malformed id is replaced", cookie: "not-a-uuid", wantIssued: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newAppMiddleware(t, nil)

			var seen string
			handler := mw.BookingSession(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = store.SessionID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/flow/staff", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "booking_session", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("X-Booking-Session", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get("X-Booking-Session"))

			cookies := rec.Result().Cookies()
			if !tt.wantIssued {
				assert.Equal(t, tt.wantID, seen)
				assert.Empty(t, cookies)

				return
			}

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			require.Len(t, cookies, 1)
			assert.Equal(t, seen, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.Zero(t, cookies[0].MaxAge)
		})
	}
}

func TestRateLimit(t *testing.T) {
	mw, _ := newAppMiddleware(t, func(cfg *config.Config) {
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60
	})

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := call("1.2.3.4")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusNoContent, call("1.2.3.4").Code)

	limited := call("1.2.3.4")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, call("5.6.7.8").Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mw, mr := newAppMiddleware(t, func(cfg *config.Config) {
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 1
		cfg.App.RateLimiter.WindowSeconds = 60
	})
	mr.Close()

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/services", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw, mr := newAppMiddleware(t, nil)

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/services", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.Empty(t, mr.Keys())
}

func TestLanguage(t *testing.T) {
	mw, _ := newAppMiddleware(t, nil)

	var lang string
	handler := mw.Language(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		lang = message.Language(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, message.Negotiate("en-GB,en;q=0.9"), lang)
}

func TestTracing_KeepsStatus(t *testing.T) {
	mw, _ := newAppMiddleware(t, nil)

	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/flow/submit", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
