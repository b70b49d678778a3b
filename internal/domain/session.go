package domain

import "time"

// Session is one login-to-logout span. A nil Logout means the user is
// currently logged in.
type Session struct {
	ID     string
	Login  time.Time
	Logout *time.Time
	Breaks []Break
}

// Break is one pause within a session. A nil End means the break is
// still running.
type Break struct {
	Start time.Time
	End   *time.Time
}

// Open reports whether the session has not been logged out yet.
func (s Session) Open() bool {
	return s.Logout == nil
}

// EffectiveEnd resolves the end of the session, treating an open
// session as ongoing up to now.
func (s Session) EffectiveEnd(now time.Time) time.Time {
	if s.Logout != nil {
		return *s.Logout
	}
	return now
}

// OpenBreak returns the index of the session's running break, or false
// when every break is closed. At most one break is ever open, and it is
// always the tail of the slice.
func (s Session) OpenBreak() (int, bool) {
	for i, b := range s.Breaks {
		if b.End == nil {
			return i, true
		}
	}
	return -1, false
}

// Open reports whether the break has not been ended yet.
func (b Break) Open() bool {
	return b.End == nil
}

// EffectiveEnd resolves the end of the break, treating an open break as
// ongoing up to now.
func (b Break) EffectiveEnd(now time.Time) time.Time {
	if b.End != nil {
		return *b.End
	}
	return now
}
