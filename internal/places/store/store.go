// Package store provides the place reference table behind a narrow
// interface, with in-memory, PostgreSQL, and Redis-cached implementations.
package store

import (
	"context"

	"codice/internal/places/models"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return sentinel.ErrNotFound when the requested place does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures
//
// The table is reference data: written once at load time, read-only
// afterwards. Find must be safe for unbounded concurrent use.
type Store interface {
	Find(ctx context.Context, code string) (*models.Place, error)
	Put(ctx context.Context, place *models.Place) error
	Count(ctx context.Context) (int, error)
}
