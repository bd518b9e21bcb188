package utils

import "time"

// Shared time formats.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// FormatTime2 formats a timestamp for responses; zero values become "".
func FormatTime2(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateTimeFormat)
}

// FormatDate formats the date part only.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// ParseDateTime accepts either a date or a full datetime string.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateFormat, s, time.Local)
}
