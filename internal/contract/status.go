package contract

import "time"

// StatusResponse is the aggregate view of today's logical day
// (BoundaryHour to next BoundaryHour).
type StatusResponse struct {
	TotalLogin time.Duration
	TotalBreak time.Duration
	Productive time.Duration

	// LoggedIn reports whether a session is currently open; Since is
	// its login instant.
	LoggedIn bool
	Since    *time.Time

	// FirstLogin is the earliest clamped session start inside today's
	// window, nil when nothing overlaps it.
	FirstLogin *time.Time
}
