package services

import (
	"time"

	"github.com/joiful-app/joilogs-backend/internal/dates"
)

// CalculateStreak computes the next streak value from the profile's previous
// streak and the moment of its last save. Both sides are normalized to UTC
// midnight so the comparison is a whole-calendar-day difference.
//
// Same day keeps the streak (multiple saves per day never inflate it), the
// next day increments it, and any larger gap resets to 1. A negative diff
// from clock skew also resets. Note this is driven by when the user last
// saved, not by the calendar date of the entry being saved, so backfilling a
// past date still advances the streak from today.
func CalculateStreak(currentStreak int, lastLogDate *time.Time, now time.Time) int {
	if lastLogDate == nil {
		return 1
	}

	lastLog := dates.Midnight(*lastLogDate)
	today := dates.Midnight(now)
	dayDiff := int(today.Sub(lastLog).Hours() / 24)

	switch dayDiff {
	case 0:
		return currentStreak
	case 1:
		return currentStreak + 1
	default:
		return 1
	}
}
