package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2024, 3, 5, 15, 4, 5, 0, time.UTC)
	todayMidnight := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	yesterdayLate := time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)
	threeDaysAgo := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2024, 3, 6, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first ever log", 0, nil, 1},
		{"same day re-save keeps streak", 5, &todayMidnight, 5},
		{"same day keeps zero too", 0, &todayMidnight, 0},
		{"consecutive day increments", 5, &yesterdayLate, 6},
		{"gap resets", 5, &threeDaysAgo, 1},
		{"clock skew resets", 5, &tomorrow, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStreak(tt.current, tt.last, now))
		})
	}
}

func TestCalculateStreakIgnoresTimeOfDay(t *testing.T) {
	// A save at 00:01 the day after a 23:59 save is still consecutive.
	lastLog := time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC)
	now := time.Date(2024, 3, 5, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 4, CalculateStreak(3, &lastLog, now))
}
