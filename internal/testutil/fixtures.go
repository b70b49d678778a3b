package testutil

import (
	"time"

	"github.com/alexanderramin/punch/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

// WithLogout closes the session at the given instant.
func WithLogout(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Logout = &t
	}
}

// WithBreak appends a closed break.
func WithBreak(start, end time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Breaks = append(s.Breaks, domain.Break{Start: start, End: &end})
	}
}

// WithOpenBreak appends a still-running break.
func WithOpenBreak(start time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Breaks = append(s.Breaks, domain.Break{Start: start})
	}
}

// NewTestSession builds a session starting at login. Without options
// the session is open.
func NewTestSession(login time.Time, opts ...SessionOption) domain.Session {
	s := domain.Session{
		ID:    uuid.New().String(),
		Login: login,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestLog builds a log snapshot with the given sessions and a
// lastReset stamp just before the first session.
func NewTestLog(sessions ...domain.Session) domain.Log {
	log := domain.Log{Sessions: sessions}
	if len(sessions) > 0 {
		t := sessions[0].Login.Add(-time.Minute)
		log.LastReset = &t
	}
	return log
}
