//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"codice/internal/places/models"
	"codice/internal/places/store"
	"codice/internal/sentinel"
	"codice/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) TestPutAndFind() {
	ctx := context.Background()

	err := s.store.Put(ctx, &models.Place{
		Code:        "H501",
		CountryCode: "IT",
		CountryName: "Italia",
		City:        "Roma",
		State:       "RM",
	})
	s.Require().NoError(err)

	place, err := s.store.Find(ctx, "h501")
	s.Require().NoError(err, "lookup is case-insensitive")
	s.Equal("Roma", place.City)
	s.Equal("RM", place.State)
}

func (s *PostgresStoreSuite) TestForeignCodesHaveNoCityOrState() {
	ctx := context.Background()

	err := s.store.Put(ctx, &models.Place{
		Code:        "Z219",
		CountryCode: "JP",
		CountryName: "Giappone",
	})
	s.Require().NoError(err)

	place, err := s.store.Find(ctx, "Z219")
	s.Require().NoError(err)
	s.Empty(place.City)
	s.Empty(place.State)
	s.True(place.Foreign())
}

func (s *PostgresStoreSuite) TestFindMissingReturnsSentinel() {
	_, err := s.store.Find(context.Background(), "Z999")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPutUpserts() {
	ctx := context.Background()

	place := &models.Place{Code: "F205", CountryCode: "IT", CountryName: "Italia", City: "Milan", State: "MI"}
	s.Require().NoError(s.store.Put(ctx, place))

	place.City = "Milano"
	s.Require().NoError(s.store.Put(ctx, place))

	got, err := s.store.Find(ctx, "F205")
	s.Require().NoError(err)
	s.Equal("Milano", got.City)

	count, err := s.store.Count(ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}
