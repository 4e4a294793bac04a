package timezone

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/shared/constant"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrInvalidDate     = errors.New("invalid date")
)

var (
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	locations sync.Map

	appMu       sync.RWMutex
	appLocation *time.Location
)

// Init sets the application timezone used by Now, Today and Parse.
func Init(name string) error {
	loc, err := LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Europe/Rome', 'UTC'")

		setAppLocation(time.UTC)

		return err
	}

	setAppLocation(loc)
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return nil
}

func setAppLocation(loc *time.Location) {
	appMu.Lock()
	appLocation = loc
	appMu.Unlock()
}

// LoadLocation resolves an IANA name. Empty names and "Local" are rejected so results never
// depend on the host configuration.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}

	if cached, ok := locations.Load(name); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}

	locations.Store(name, loc)

	return loc, nil
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	appMu.RLock()
	defer appMu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the current application-local date as yyyy-MM-dd.
func Today() string {
	return Now().Format(constant.DateFormat)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// IsValidTime reports whether value is a zero-padded 24h HH:mm string.
func IsValidTime(value string) bool {
	return timePattern.MatchString(value)
}

// IsValidDate reports whether value is a real calendar date in yyyy-MM-dd form.
func IsValidDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}

	_, err := time.Parse(constant.DateFormat, value)

	return err == nil
}

// ParseDate parses yyyy-MM-dd as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	d, err := time.ParseInLocation(constant.DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	return d, nil
}

// LocalToUTC converts a business-local date and time into a UTC time.
// Wall-clock values that do not exist in tz (skipped by a DST jump) are rejected.
func LocalToUTC(date, hhmm, tz string) (time.Time, bool) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, false
	}

	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, false
	}

	minutes, err := ToMinutes(hhmm)
	if err != nil {
		return time.Time{}, false
	}

	hour, minute := minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour
	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)

	if local.Hour() != hour || local.Minute() != minute || local.Day() != day.Day() {
		return time.Time{}, false
	}

	return local.UTC(), true
}

// LocalToUTCInstant is LocalToUTC formatted as an ISO-8601 UTC instant.
func LocalToUTCInstant(date, hhmm, tz string) (string, bool) {
	t, ok := LocalToUTC(date, hhmm, tz)
	if !ok {
		return "", false
	}

	return t.Format(constant.InstantFormat), true
}

// UTCToLocal converts an RFC3339 instant into business-local date and time.
func UTCToLocal(instant, tz string) (string, string, bool) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return "", "", false
	}

	t, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		return "", "", false
	}

	local := t.In(loc)

	return local.Format(constant.DateFormat), local.Format(constant.TimeFormat), true
}

// ToMinutes returns hours*60+minutes for an HH:mm value.
func ToMinutes(hhmm string) (int, error) {
	m := timePattern.FindStringSubmatch(hhmm)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minutes := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	return hours*constant.MinutesPerHour + minutes, nil
}

// MinutesToTimeString formats minute-of-day as HH:mm. Values outside one day wrap around.
func MinutesToTimeString(minutes int) string {
	minutes %= constant.MinutesPerDay
	if minutes < 0 {
		minutes += constant.MinutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// AddMinutes shifts an HH:mm value by delta minutes.
func AddMinutes(hhmm string, delta int) (string, error) {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return "", err
	}

	return MinutesToTimeString(m + delta), nil
}

// CompareTimes returns -1, 0 or 1 as a is before, equal to or after b.
func CompareTimes(a, b string) (int, error) {
	ma, err := ToMinutes(a)
	if err != nil {
		return 0, err
	}

	mb, err := ToMinutes(b)
	if err != nil {
		return 0, err
	}

	switch {
	case ma < mb:
		return -1, nil
	case ma > mb:
		return 1, nil
	default:
		return 0, nil
	}
}
