package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the default layout for reading and printing start times.
const TimeLayout = "2006-01-02 15:04"

// ParseTime accepts TimeLayout or RFC 3339. TimeLayout values are read as UTC.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use %q or RFC 3339", s, TimeLayout)
	}
	return t, nil
}

// FormatDuration prints whole hours and minutes, e.g. "1h30m" or "45m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
