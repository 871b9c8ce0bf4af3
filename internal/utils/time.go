package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daynotes/internal/constants"
)

// ApplicationDay returns the date key of the day the user is considered to
// be living in. Before the rollover hour the previous calendar day is still
// current, so notes written after midnight land on the evening's page.
func ApplicationDay(now time.Time) string {
	if now.Hour() < constants.DayRolloverHour {
		// Calendar arithmetic rather than Add(-24h) so DST days stay correct
		return ToDateKey(time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, now.Location()))
	}
	return ToDateKey(now)
}

// ToDateKey formats t as YYYY-MM-DD in t's own location.
func ToDateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a YYYY-MM-DD key to midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", key, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// IsDateKey reports whether key is a canonical zero-padded date key.
func IsDateKey(key string) bool {
	t, err := time.Parse(constants.DateFormat, key)
	return err == nil && t.Format(constants.DateFormat) == key
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return "", err
	}
	return ToDateKey(t.AddDate(0, 0, n)), nil
}

// DisplayDate renders a key as "Monday, January 2, 2006". It depends only on
// the key, never on the current time. Invalid keys are returned unchanged.
func DisplayDate(key string) string {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return key
	}
	return t.Format(constants.DisplayDateFormat)
}

// DisplayMonth renders a month label such as "October 2026".
func DisplayMonth(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(constants.DisplayMonthFormat)
}

// ShortDisplay renders t as "January 2".
func ShortDisplay(t time.Time) string {
	return t.Format(constants.ShortDateFormat)
}

// ClockText renders the HH:MM clock.
func ClockText(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// NightNotice describes the hours between midnight and the rollover, when
// the application day still points at yesterday. It is empty at other times.
func NightNotice(now time.Time) string {
	if now.Hour() >= constants.DayRolloverHour {
		return ""
	}
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 12, 0, 0, 0, now.Location())
	return fmt.Sprintf("the night connecting %s to %s", ShortDisplay(yesterday), ShortDisplay(now))
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks that the timezone name can be loaded.
func ValidateTimezone(timezone string) error {
	if _, err := LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return nil
}
