package utils

import "time"

// DefaultNewReleaseWindowDays is how long a shoe counts as freshly released
const DefaultNewReleaseWindowDays = 30

// IsRecentRelease reports whether date falls inside the trailing window of
// windowDays before now. A release exactly windowDays old still counts.
// Zero dates and dates after now are never recent.
func IsRecentRelease(date, now time.Time, windowDays int) bool {
	if date.IsZero() || date.After(now) {
		return false
	}
	// Calendar arithmetic keeps large windows from overflowing a Duration.
	return !now.After(date.AddDate(0, 0, windowDays))
}
