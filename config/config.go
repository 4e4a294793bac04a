package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name               string `envconfig:"APP_NAME"             default:"salonbooking"`
		Timezone           string `envconfig:"TIMEZONE"             default:"Europe/Rome"`
		BusinessID         string `envconfig:"BUSINESS_ID"`
		DefaultLanguage    string `envconfig:"DEFAULT_LANGUAGE"     default:"it"`
		DefaultPhonePrefix string `envconfig:"DEFAULT_PHONE_PREFIX" default:"+39"`
		CORS               struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	Session struct {
		CookieName string `envconfig:"COOKIE_NAME" default:"booking_session"`
		TTLSeconds int    `envconfig:"TTL_SECONDS" default:"86400"`
		Secure     bool   `envconfig:"SECURE"`
	} `envconfig:"SESSION"`

	Backend struct {
		URL            string `envconfig:"URL"`
		AnonKey        string `envconfig:"ANON_KEY"`
		JWTSecret      string `envconfig:"JWT_SECRET"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"20"`
		Functions      struct {
			Availability string `envconfig:"AVAILABILITY"  default:"dynamic-slots"`
			ContactCheck string `envconfig:"CONTACT_CHECK" default:"contact-check"`
		} `envconfig:"FUNCTIONS"`
		RPC struct {
			CreateAppointment string `envconfig:"CREATE_APPOINTMENT" default:"create_appointment"`
			UpdateAppointment string `envconfig:"UPDATE_APPOINTMENT" default:"update_appointment"`
			CancelAppointment string `envconfig:"CANCEL_APPOINTMENT" default:"cancel_appointment"`
		} `envconfig:"RPC"`
	} `envconfig:"BACKEND"`

	Booking struct {
		SourceChannel            string  `envconfig:"SOURCE_CHANNEL"             default:"website"`
		AppointmentStatus        string  `envconfig:"APPOINTMENT_STATUS"         default:"confirmed"`
		MaxProbeDays             int     `envconfig:"MAX_PROBE_DAYS"             default:"30"`
		ProbeRatePerSecond       float64 `envconfig:"PROBE_RATE_PER_SECOND"      default:"5"`
		ConfirmationGraceSeconds int     `envconfig:"CONFIRMATION_GRACE_SECONDS" default:"5"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Str("business_id", conf.App.BusinessID).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized with warnings")
		}
	}

	return &conf
}
