package util

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTime tries RFC3339, RFC3339Nano, a zoneless timestamp, a bare calendar
// date, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// FormatDate renders t as an ISO calendar date (day granularity).
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysFromNow returns today shifted by n calendar days, truncated to the day.
func DaysFromNow(n int) time.Time {
	return time.Now().AddDate(0, 0, n).Truncate(24 * time.Hour)
}
