package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ISOTimestamp renders t the way API responses carry timestamps.
func ISOTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
