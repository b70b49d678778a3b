package domain

import "errors"

var (
	// ErrAlreadyLoggedIn is returned when a login is attempted while the
	// tail session is still open.
	ErrAlreadyLoggedIn = errors.New("already logged in")

	// ErrNotLoggedIn is returned by operations that require an open session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrBreakInProgress is returned when a break is started while another
	// break is still running.
	ErrBreakInProgress = errors.New("break already in progress")

	// ErrNoActiveBreak is returned when a break is ended but none is running.
	ErrNoActiveBreak = errors.New("no active break")

	// ErrNoActivity is returned by queries over a log with no sessions.
	ErrNoActivity = errors.New("no activity recorded yet")
)
