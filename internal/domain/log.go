package domain

import "time"

// Log is a snapshot of the recorded sessions plus the instant of the
// last daily reset. The log is append-only: the only fields ever
// rewritten are the tail session's Logout and the tail break's End.
// Mutating operations return a new snapshot and leave the receiver's
// backing arrays untouched, so a loaded Log can be handed to the
// aggregator while the mutated copy goes back to the store.
type Log struct {
	Sessions  []Session
	LastReset *time.Time
}

// CurrentSession returns the tail session. The second return value is
// false when the log is empty.
func (l Log) CurrentSession() (Session, bool) {
	if len(l.Sessions) == 0 {
		return Session{}, false
	}
	return l.Sessions[len(l.Sessions)-1], true
}

// Active reports whether the tail session is still open.
func (l Log) Active() bool {
	cur, ok := l.CurrentSession()
	return ok && cur.Open()
}

// Login appends a new open session with the given ID starting at now.
// Returns ErrAlreadyLoggedIn when the tail session is still open.
func (l Log) Login(id string, now time.Time) (Log, error) {
	if l.Active() {
		return Log{}, ErrAlreadyLoggedIn
	}
	next := l.clone()
	next.Sessions = append(next.Sessions, Session{ID: id, Login: now})
	return next, nil
}

// Logout closes the tail session at now. Returns ErrNotLoggedIn when
// no session is open.
func (l Log) Logout(now time.Time) (Log, error) {
	if !l.Active() {
		return Log{}, ErrNotLoggedIn
	}
	next := l.clone()
	t := now
	next.Sessions[len(next.Sessions)-1].Logout = &t
	return next, nil
}

// StartBreak appends an open break to the tail session. Returns
// ErrNotLoggedIn when no session is open, ErrBreakInProgress when a
// break is already running.
func (l Log) StartBreak(now time.Time) (Log, error) {
	if !l.Active() {
		return Log{}, ErrNotLoggedIn
	}
	cur, _ := l.CurrentSession()
	if _, open := cur.OpenBreak(); open {
		return Log{}, ErrBreakInProgress
	}
	next := l.clone()
	tail := &next.Sessions[len(next.Sessions)-1]
	tail.Breaks = append(tail.Breaks, Break{Start: now})
	return next, nil
}

// EndBreak closes the running break of the tail session at now.
// Returns ErrNotLoggedIn when no session is open, ErrNoActiveBreak
// when every break is closed.
func (l Log) EndBreak(now time.Time) (Log, error) {
	if !l.Active() {
		return Log{}, ErrNotLoggedIn
	}
	cur, _ := l.CurrentSession()
	idx, open := cur.OpenBreak()
	if !open {
		return Log{}, ErrNoActiveBreak
	}
	next := l.clone()
	t := now
	next.Sessions[len(next.Sessions)-1].Breaks[idx].End = &t
	return next, nil
}

// Reset discards every session and stamps the reset instant.
func (l Log) Reset(now time.Time) Log {
	t := now
	return Log{LastReset: &t}
}

// clone deep-copies the log so mutations never leak into the receiver.
func (l Log) clone() Log {
	next := Log{LastReset: l.LastReset}
	if l.Sessions == nil {
		return next
	}
	next.Sessions = make([]Session, len(l.Sessions))
	copy(next.Sessions, l.Sessions)
	for i, s := range next.Sessions {
		if s.Breaks != nil {
			breaks := make([]Break, len(s.Breaks))
			copy(breaks, s.Breaks)
			next.Sessions[i].Breaks = breaks
		}
	}
	return next
}
