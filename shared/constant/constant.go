package constant

const (
	DateFormat    = "2006-01-02"
	TimeFormat    = "15:04"
	InstantFormat = "2006-01-02T15:04:05Z"
)

const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = MinutesPerHour * HoursPerDay
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "identity_session"
	ContextKeyBookingID contextKey = "booking_session_id"
	ContextKeyLanguage  contextKey = "language"
	ContextKeyUserRole  contextKey = "user_role"
)

const (
	RequestParamID      = "id"
	RequestParamDate    = "date"
	RequestMaxBodyBytes = 1 << 20
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelStoreScopeName      = "store"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderAcceptLanguage     = "Accept-Language"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRetryAfter         = "Retry-After"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "apikey"
	RequestHeaderBookingSession     = "X-Booking-Session"
	RequestHeaderRefreshToken       = "X-Refresh-Token"
)

const (
	CacheControlNoStore    = "no-store"
	ContentTypeJSON        = "application/json"
	ContentTypePgrstSingle = "application/vnd.pgrst.object+json"
	BearerPrefix           = "Bearer "
	LanguageItalian        = "it"
	LanguageEnglish        = "en"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorInternal             = "INTERNAL SERVER ERROR"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
