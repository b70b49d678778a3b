package domain

import "time"

// Summary holds the aggregated durations and boundary instants for one
// window.
type Summary struct {
	TotalLogin time.Duration
	TotalBreak time.Duration
	FirstLogin *time.Time
	LastLogout *time.Time
}

// Productive returns login time minus break time, floored at zero so
// overlapping break bookkeeping can never drive it negative.
func (s Summary) Productive() time.Duration {
	p := s.TotalLogin - s.TotalBreak
	if p < 0 {
		return 0
	}
	return p
}

// Aggregate sums session and break time over the window
// [winStart, winEnd). Open sessions and breaks are treated as ongoing
// up to now, and every span is clamped to the window and capped at now.
// A span contributes only when start < winEnd and end > winStart, so a
// span touching a boundary instant exactly is counted in one window,
// never two.
func Aggregate(sessions []Session, winStart, winEnd, now time.Time) Summary {
	var sum Summary
	for _, s := range sessions {
		end := s.EffectiveEnd(now)
		if !s.Login.Before(winEnd) || !end.After(winStart) {
			continue
		}

		clampStart := laterOf(s.Login, winStart)
		clampEnd := earlierOf(earlierOf(end, winEnd), now)
		if clampEnd.After(clampStart) {
			sum.TotalLogin += clampEnd.Sub(clampStart)
		}

		if sum.FirstLogin == nil || clampStart.Before(*sum.FirstLogin) {
			t := clampStart
			sum.FirstLogin = &t
		}
		if sum.LastLogout == nil || clampEnd.After(*sum.LastLogout) {
			t := clampEnd
			sum.LastLogout = &t
		}

		for _, b := range s.Breaks {
			bEnd := b.EffectiveEnd(now)
			if !b.Start.Before(winEnd) || !bEnd.After(winStart) {
				continue
			}
			bs := laterOf(b.Start, winStart)
			be := earlierOf(earlierOf(bEnd, winEnd), now)
			if be.After(bs) {
				sum.TotalBreak += be.Sub(bs)
			}
		}
	}
	return sum
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
