// Package timezone converts between business-local wall-clock values and UTC instants.
//
// Usage Examples:
//
//  1. Local date and time to a UTC instant:
//     instant, ok := timezone.LocalToUTCInstant("2025-06-10", "10:00", "Europe/Rome") // "2025-06-10T08:00:00Z"
//
//  2. Back to business-local time:
//     date, hhmm, ok := timezone.UTCToLocal("2025-06-10T08:00:00Z", "Europe/Rome")
//
//  3. Minute-of-day arithmetic:
//     m, err := timezone.ToMinutes("09:30")   // 570
//     s := timezone.MinutesToTimeString(570)  // "09:30"
//
//  4. Application clock:
//     timezone.Init(cfg.App.Timezone)
//     today := timezone.Today()
//
// Only standard IANA names are accepted: "UTC", "Europe/Rome", "America/New_York".
// Conversions never fall back to the current time; malformed input reports ok == false.
package timezone
