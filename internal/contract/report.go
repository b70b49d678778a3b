package contract

import "time"

// DayReport is the aggregate view of one calendar day
// (midnight to midnight).
type DayReport struct {
	Date       time.Time
	TotalLogin time.Duration
	TotalBreak time.Duration
	Productive time.Duration
	FirstLogin *time.Time
	LastLogout *time.Time
}

// ReportResponse covers the last seven calendar days, oldest first.
type ReportResponse struct {
	Days []DayReport
}
