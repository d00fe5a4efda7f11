package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codice/internal/places/models"
	"codice/internal/sentinel"
)

func TestInMemoryFindMiss(t *testing.T) {
	s := NewInMemory()
	_, err := s.Find(context.Background(), "H501")
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInMemoryPutAndFind(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, &models.Place{
		Code: "H501", CountryCode: "IT", CountryName: "Italia", City: "Roma", State: "RM",
	}))

	place, err := s.Find(ctx, "H501")
	require.NoError(t, err)
	assert.Equal(t, "Roma", place.City)
	assert.False(t, place.Foreign())

	// Lookups are case-insensitive, matching code normalization upstream.
	place, err = s.Find(ctx, "h501")
	require.NoError(t, err)
	assert.Equal(t, "RM", place.State)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInMemoryReturnsCopies(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, &models.Place{Code: "Z219", CountryCode: "JP", CountryName: "Giappone"}))

	first, err := s.Find(ctx, "Z219")
	require.NoError(t, err)
	first.CountryName = "mutated"

	second, err := s.Find(ctx, "Z219")
	require.NoError(t, err)
	assert.Equal(t, "Giappone", second.CountryName)
	assert.True(t, second.Foreign())
}

func TestInMemoryPutRejectsEmptyCode(t *testing.T) {
	s := NewInMemory()
	assert.Error(t, s.Put(context.Background(), &models.Place{}))
	assert.Error(t, s.Put(context.Background(), nil))
}
