package service

import (
	"context"
	"time"

	"github.com/alexanderramin/punch/internal/contract"
	"github.com/alexanderramin/punch/internal/domain"
	"github.com/alexanderramin/punch/internal/store"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// reportDays is how many calendar days the report covers, today included.
const reportDays = 7

type trackerService struct {
	store store.Store
	clock clock.Clock
}

func NewTrackerService(st store.Store, clk clock.Clock) TrackerService {
	return &trackerService{store: st, clock: clk}
}

// loadForToday loads the log and applies the daily reset policy. When
// the policy fires, the cleared log is persisted immediately so exactly
// one reset happens per logical day, even if the triggering command is
// a read or later rejects its mutation.
func (s *trackerService) loadForToday(ctx context.Context) (domain.Log, error) {
	log, err := s.store.Load(ctx)
	if err != nil {
		return domain.Log{}, err
	}
	if domain.ShouldReset(log.LastReset, s.clock.Now()) {
		log = log.Reset(s.clock.Now())
		if err := s.store.Save(ctx, log); err != nil {
			return domain.Log{}, err
		}
	}
	return log, nil
}

func (s *trackerService) Login(ctx context.Context) (time.Time, error) {
	log, err := s.loadForToday(ctx)
	if err != nil {
		return time.Time{}, err
	}
	now := s.clock.Now()
	next, err := log.Login(uuid.New().String(), now)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func (s *trackerService) Logout(ctx context.Context) (time.Time, error) {
	return s.mutate(ctx, domain.Log.Logout)
}

func (s *trackerService) StartBreak(ctx context.Context) (time.Time, error) {
	return s.mutate(ctx, domain.Log.StartBreak)
}

func (s *trackerService) EndBreak(ctx context.Context) (time.Time, error) {
	return s.mutate(ctx, domain.Log.EndBreak)
}

// mutate runs the reset check, applies one log operation at the current
// instant, and persists the new snapshot. Domain-rule rejections leave
// the stored log untouched.
func (s *trackerService) mutate(ctx context.Context, op func(domain.Log, time.Time) (domain.Log, error)) (time.Time, error) {
	log, err := s.loadForToday(ctx)
	if err != nil {
		return time.Time{}, err
	}
	now := s.clock.Now()
	next, err := op(log, now)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func (s *trackerService) Status(ctx context.Context) (*contract.StatusResponse, error) {
	log, err := s.loadForToday(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	dayStart, dayEnd := domain.DayWindow(now, domain.BoundaryHour)
	sum := domain.Aggregate(log.Sessions, dayStart, dayEnd, now)

	resp := &contract.StatusResponse{
		TotalLogin: sum.TotalLogin,
		TotalBreak: sum.TotalBreak,
		Productive: sum.Productive(),
		FirstLogin: sum.FirstLogin,
	}
	if cur, ok := log.CurrentSession(); ok && cur.Open() {
		resp.LoggedIn = true
		t := cur.Login
		resp.Since = &t
	}
	return resp, nil
}

func (s *trackerService) Report(ctx context.Context) (*contract.ReportResponse, error) {
	// The report reads history as-is; the daily reset policy does not
	// apply here.
	log, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(log.Sessions) == 0 {
		return nil, domain.ErrNoActivity
	}

	now := s.clock.Now()
	resp := &contract.ReportResponse{Days: make([]contract.DayReport, 0, reportDays)}
	for i := reportDays - 1; i >= 0; i-- {
		start, end := domain.CalendarDay(now.AddDate(0, 0, -i))
		sum := domain.Aggregate(log.Sessions, start, end, now)
		resp.Days = append(resp.Days, contract.DayReport{
			Date:       start,
			TotalLogin: sum.TotalLogin,
			TotalBreak: sum.TotalBreak,
			Productive: sum.Productive(),
			FirstLogin: sum.FirstLogin,
			LastLogout: sum.LastLogout,
		})
	}
	return resp, nil
}

func (s *trackerService) Reset(ctx context.Context) error {
	return s.store.Save(ctx, domain.Log{}.Reset(s.clock.Now()))
}
