package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"codice/internal/places/models"
	"codice/internal/sentinel"
)

// InMemoryStore holds the place table in memory. It is the default backing
// when no database is configured and the fixture store for tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	places map[string]models.Place
}

// NewInMemory constructs an empty in-memory place store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{places: make(map[string]models.Place)}
}

func (s *InMemoryStore) Find(_ context.Context, code string) (*models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	place, ok := s.places[strings.ToUpper(code)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	// Return a copy to prevent external modifications.
	copyPlace := place
	return &copyPlace, nil
}

func (s *InMemoryStore) Put(_ context.Context, place *models.Place) error {
	if place == nil || place.Code == "" {
		return fmt.Errorf("place with a code is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[strings.ToUpper(place.Code)] = *place
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.places), nil
}
