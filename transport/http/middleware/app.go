package middleware

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"salonbooking/config"
	"salonbooking/infras/otel"
	"salonbooking/shared/cache"
	"salonbooking/shared/constant"
	"salonbooking/shared/message"
	"salonbooking/shared/store"
)

const (
	otelHTTPScopeName = "http"
)

var errNotHijacker = errors.New("response writer does not support hijacking")

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	Language(next http.Handler) http.Handler
	BookingSession(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack hands the connection to the websocket upgrader.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errNotHijacker
	}

	r.status = http.StatusSwitchingProtocols

	return hijacker.Hijack() //nolint:wrapcheck
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		scope.SetAttributes(map[string]any{
			"app.name":         a.config.App.Name,
			"http.path":        r.URL.Path,
			"http.route":       route,
			"http.method":      r.Method,
			"http.user_agent":  userAgent(r),
			"http.host":        r.Host,
			"http.source":      clientIP(r),
			"http.status_code": rec.status,
		})
	})
}

// Language picks the message language from Accept-Language.
func (a *appMiddleware) Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := message.Negotiate(r.Header.Get(constant.RequestHeaderAcceptLanguage))

		next.ServeHTTP(w, r.WithContext(message.WithLanguage(r.Context(), lang)))
	})
}

// BookingSession attaches the browsing-session id that keys the booking selections. The id comes
// from the session cookie or the X-Booking-Session header; a new one is issued as a cookie
// without Max-Age so it ends with the browser session.
func (a *appMiddleware) BookingSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(constant.RequestHeaderBookingSession)

		if id == constant.Empty {
			if cookie, err := r.Cookie(a.config.Session.CookieName); err == nil {
				id = cookie.Value
			}
		}

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()

			http.SetCookie(w, &http.Cookie{
				Name:     a.config.Session.CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   a.config.Session.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set(constant.RequestHeaderBookingSession, id)

		next.ServeHTTP(w, r.WithContext(store.WithSessionID(r.Context(), id)))
	})
}
