package testutil

import (
	"context"

	"github.com/alexanderramin/punch/internal/domain"
)

// MemStore is an in-memory session store for tests. Errors can be
// injected per call site to exercise persistence failure paths.
type MemStore struct {
	Log     domain.Log
	LoadErr error
	SaveErr error

	// Saves counts successful Save calls.
	Saves int
}

func (m *MemStore) Load(ctx context.Context) (domain.Log, error) {
	if m.LoadErr != nil {
		return domain.Log{}, m.LoadErr
	}
	return m.Log, nil
}

func (m *MemStore) Save(ctx context.Context, log domain.Log) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Log = log
	m.Saves++
	return nil
}
