package service

import (
	"context"
	"time"

	"github.com/alexanderramin/punch/internal/contract"
)

// TrackerService is the single entry point the CLI talks to. Mutating
// operations return the instant they were recorded at.
type TrackerService interface {
	Login(ctx context.Context) (time.Time, error)
	Logout(ctx context.Context) (time.Time, error)
	StartBreak(ctx context.Context) (time.Time, error)
	EndBreak(ctx context.Context) (time.Time, error)
	Status(ctx context.Context) (*contract.StatusResponse, error)
	Report(ctx context.Context) (*contract.ReportResponse, error)
	Reset(ctx context.Context) error
}
