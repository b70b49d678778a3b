package domain

import "time"

// BoundaryHour is the hour at which a new logical day begins. Work past
// midnight counts toward the previous day until 04:00.
const BoundaryHour = 4

// DayWindow returns the logical day containing t: the most recent
// occurrence of boundaryHour:00:00 at or before t, and the next
// occurrence (exclusive).
func DayWindow(t time.Time, boundaryHour int) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), boundaryHour, 0, 0, 0, t.Location())
	if t.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start, start.AddDate(0, 0, 1)
}

// CalendarDay returns the midnight-to-midnight window containing t.
// The 7-day report aggregates over calendar days, unlike reset and
// status which use the BoundaryHour logical day.
func CalendarDay(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
