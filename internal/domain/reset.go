package domain

import "time"

// ShouldReset reports whether the log belongs to an earlier logical day
// and must be cleared before it is read or mutated. It is true on the
// very first run (no reset recorded) and whenever the last reset
// happened before the start of the current logical day. Skipped days
// collapse into a single reset: the predicate compares against today's
// boundary only.
func ShouldReset(lastReset *time.Time, now time.Time) bool {
	if lastReset == nil {
		return true
	}
	todayStart, _ := DayWindow(now, BoundaryHour)
	return lastReset.Before(todayStart)
}
