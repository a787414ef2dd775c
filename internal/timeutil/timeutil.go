// Package timeutil converts between naive local wall-clock values and the
// strings used for storage, transport and SMS display. No value carries a
// UTC offset; client and server agree on the layout bit-for-bit.
package timeutil

import (
	"strings"
	"time"
)

const (
	// DateTimeLayout is the storage/wire layout for appointment times.
	DateTimeLayout = "2006-01-02T15:04:05"
	// DateLayout is the wire layout for calendar dates.
	DateLayout = "2006-01-02"

	displayDateLayout = "02.01.2006"
	displayTimeLayout = "15:04"
)

// ParseDateTime accepts the wire layout plus the variations the browser
// client historically produced: optional seconds, a space instead of "T",
// and a trailing "Z" (stripped, the value is still treated as local time).
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	s = strings.Replace(s, " ", "T", 1)

	if t, err := time.ParseInLocation(DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DisplayDate renders dd.mm.yyyy for SMS texts.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// DisplayTime renders HH:MM for SMS texts.
func DisplayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// DayBounds returns the half-open interval [midnight, midnight+24h) of the
// day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// Tomorrow returns the day after the day containing now.
func Tomorrow(now time.Time) time.Time {
	start, _ := DayBounds(now)
	return start.AddDate(0, 0, 1)
}
