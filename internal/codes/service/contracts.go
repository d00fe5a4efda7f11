package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"codice/internal/codes/models"
	placemodels "codice/internal/places/models"
)

// PlaceStore is the read side of the place reference table. Implementations
// return sentinel.ErrNotFound for unknown codes; the service translates that
// into a domain error exactly once.
type PlaceStore interface {
	Find(ctx context.Context, code string) (*placemodels.Place, error)
}

// OutcomePublisher delivers batch cleaning outcomes to downstream consumers.
// Publishing is best-effort from the service's point of view: a failed
// publish never fails the batch item itself.
type OutcomePublisher interface {
	Publish(ctx context.Context, outcome *models.Outcome) error
}
