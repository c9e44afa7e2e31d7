// Package timeutil provides utility functions and types for working with
// time-of-day values and calendar days.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesInAnHour = 60

// TimeOfDay is a wall-clock instant within a day, accurate to the minute.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a strict "HH:MM" (24-hour) string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day out of range: %q", s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FromTime extracts the time of day from a timestamp.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (d TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

// MinuteOfDay returns the number of minutes since midnight.
func (d TimeOfDay) MinuteOfDay() int {
	return d.Hour*minutesInAnHour + d.Minute
}

// Before reports whether d occurs earlier in the day than other.
func (d TimeOfDay) Before(other TimeOfDay) bool {
	return d.MinuteOfDay() < other.MinuteOfDay()
}

// On anchors the time of day to the calendar day of t, in t's location.
func (d TimeOfDay) On(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		d.Hour,
		d.Minute,
		0,
		0,
		t.Location(),
	)
}

func (d TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// DayKey formats the calendar date of t as "YYYY-MM-DD".
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// BucketKey formats t's minute bucket as "HH:MM".
func BucketKey(t time.Time) string {
	return t.Format("15:04")
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
