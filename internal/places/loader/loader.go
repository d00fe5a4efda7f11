// Package loader reads the place-of-birth reference file and seeds a place
// store with it. The file is a JSON object keyed by place code, the same
// schema the national registry dataset is distributed in.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"codice/internal/places/models"
	"codice/internal/places/store"
)

// record mirrors one entry of the reference file. City and state are absent
// for foreign-country codes.
type record struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// Read parses the reference file into place records.
func Read(r io.Reader) ([]models.Place, error) {
	var raw map[string]record
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode place table: %w", err)
	}

	places := make([]models.Place, 0, len(raw))
	for code, rec := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 4 {
			return nil, fmt.Errorf("place code %q is not 4 characters", code)
		}
		if rec.CountryCode == "" || rec.CountryName == "" {
			return nil, fmt.Errorf("place %s is missing country data", code)
		}
		places = append(places, models.Place{
			Code:        code,
			CountryCode: rec.CountryCode,
			CountryName: rec.CountryName,
			City:        rec.City,
			State:       rec.State,
		})
	}
	return places, nil
}

// Seed loads the reference file at path into dst and returns the number of
// places written.
func Seed(ctx context.Context, dst store.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open place table: %w", err)
	}
	defer f.Close()

	places, err := Read(f)
	if err != nil {
		return 0, err
	}
	for i := range places {
		if err := dst.Put(ctx, &places[i]); err != nil {
			return i, fmt.Errorf("seed place %s: %w", places[i].Code, err)
		}
	}
	return len(places), nil
}
