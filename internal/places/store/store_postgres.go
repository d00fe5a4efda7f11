package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"codice/internal/places/models"
	"codice/internal/sentinel"
)

// PostgresStore persists the place reference table in PostgreSQL. The table
// is populated by the loader and treated as read-only afterwards.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed place store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, code string) (*models.Place, error) {
	query := `
		SELECT code, country_code, country_name, city, state
		FROM places
		WHERE code = $1
	`
	var place models.Place
	var city, state sql.NullString
	err := s.db.QueryRowContext(ctx, query, strings.ToUpper(code)).Scan(
		&place.Code,
		&place.CountryCode,
		&place.CountryName,
		&city,
		&state,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	place.City = city.String
	place.State = state.String
	return &place, nil
}

func (s *PostgresStore) Put(ctx context.Context, place *models.Place) error {
	if place == nil || place.Code == "" {
		return fmt.Errorf("place with a code is required")
	}
	query := `
		INSERT INTO places (code, country_code, country_name, city, state)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE
		SET country_code = EXCLUDED.country_code,
		    country_name = EXCLUDED.country_name,
		    city = EXCLUDED.city,
		    state = EXCLUDED.state
	`
	_, err := s.db.ExecContext(ctx, query,
		strings.ToUpper(place.Code),
		place.CountryCode,
		place.CountryName,
		nullable(place.City),
		nullable(place.State),
	)
	if err != nil {
		return fmt.Errorf("put place: %w", err)
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM places`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count places: %w", err)
	}
	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
