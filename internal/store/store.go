// Package store persists session log snapshots. The core operates on
// loaded copies; the on-disk layout is owned entirely by this package.
package store

import (
	"context"

	"github.com/alexanderramin/punch/internal/domain"
)

type Store interface {
	Load(ctx context.Context) (domain.Log, error)
	Save(ctx context.Context, log domain.Log) error
}
