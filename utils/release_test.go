package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRecentRelease(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"released today", now, true},
		{"five days old", now.Add(-5 * day), true},
		{"exactly thirty days old", now.Add(-30 * day), true},
		{"just past the window", now.Add(-30*day - time.Nanosecond), false},
		{"over a year old", now.Add(-400 * day), false},
		{"future release", now.Add(time.Hour), false},
		{"zero date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecentRelease(tt.date, now, DefaultNewReleaseWindowDays))
		})
	}
}

func TestIsRecentRelease_CustomWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, -10)

	assert.True(t, IsRecentRelease(date, now, 14))
	assert.False(t, IsRecentRelease(date, now, 7))
}

func TestIsRecentRelease_ExtremeDates(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	ancient := time.Date(1, time.January, 2, 0, 0, 0, 0, time.UTC)
	farFuture := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsRecentRelease(ancient, now, DefaultNewReleaseWindowDays))
	assert.False(t, IsRecentRelease(farFuture, now, DefaultNewReleaseWindowDays))
}

func TestIsRecentRelease_LargeWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsRecentRelease(now.AddDate(0, 0, -5), now, 200000))
	assert.True(t, IsRecentRelease(now.AddDate(-500, 0, 0), now, 200000))
	assert.False(t, IsRecentRelease(now.AddDate(-600, 0, 0), now, 200000))
}
