package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daydial/internal/constants"
)

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

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// DateKey formats t as the canonical yyyy-MM-dd key in t's own location.
// Callers convert to the configured location first; every lookup key in the
// application comes from here.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a yyyy-MM-dd key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(constants.DateFormat, key, loc)
}

// Weekday returns the day of week of t, 0 = Sunday.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days and returns midnight of the result.
// Working on calendar fields keeps DST transitions from shifting the day.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns every calendar day from start to end inclusive, ascending.
// It returns nil when end is before start.
func DaysBetween(start, end time.Time) []time.Time {
	start = StartOfDay(start)
	end = StartOfDay(end.In(start.Location()))
	if end.Before(start) {
		return nil
	}

	var days []time.Time
	for day := start; !day.After(end); day = AddDays(day, 1) {
		days = append(days, day)
	}
	return days
}

// IsBeforeDay reports whether a falls on a calendar day strictly before b's day.
func IsBeforeDay(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b.In(a.Location())))
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b.In(a.Location()))
}

// InInterval reports whether t's calendar day lies within [start, end], inclusive.
func InInterval(t, start, end time.Time) bool {
	day := StartOfDay(t)
	return !day.Before(StartOfDay(start.In(t.Location()))) && !day.After(StartOfDay(end.In(t.Location())))
}
