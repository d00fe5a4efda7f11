// Command decode is an interactive fiscal code checker. It reads codes from
// stdin line by line and prints the verdict plus the decoded identity, using
// the same place reference file as the server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"codice/internal/codes/service"
	"codice/internal/fiscalcode"
	"codice/internal/places/loader"
	placesstore "codice/internal/places/store"
	"codice/internal/platform/config"
	"codice/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	placeStore := placesstore.NewInMemory()
	if _, err := loader.Seed(ctx, placeStore, cfg.PlacesFile); err != nil {
		log.Error("place table seeding failed", "error", err, "file", cfg.PlacesFile)
		os.Exit(1)
	}

	var decoderOpts []fiscalcode.Option
	if !cfg.ReferenceDate.IsZero() {
		decoderOpts = append(decoderOpts, fiscalcode.WithReferenceDate(cfg.ReferenceDate))
	}
	if cfg.StrictCalendar {
		decoderOpts = append(decoderOpts, fiscalcode.WithStrictCalendar())
	}

	codes := service.New(fiscalcode.New(decoderOpts...), placeStore, log)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Insert code to validate: ")
		if !scanner.Scan() {
			break
		}
		check(ctx, codes, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Error("reading input failed", "error", err)
		os.Exit(1)
	}
}

func check(ctx context.Context, codes *service.Service, code string) {
	identity, err := codes.Extract(ctx, code)
	if err != nil {
		if codes.Validate(ctx, code) {
			// Temporary 11-digit codes validate but carry no identity.
			fmt.Println("Code is valid")
			return
		}
		fmt.Println("Code is invalid")
		return
	}

	fmt.Println("Code is valid")
	fmt.Println("Info:")
	fmt.Printf("\tBorn on: %s\n", identity.BornOn.Format(time.DateOnly))
	fmt.Printf("\tGender: %s\n", identity.Gender)
	if identity.PlaceOfBirth.City != "" {
		fmt.Printf("\tBorn in %s (%s), %s\n",
			identity.PlaceOfBirth.City, identity.PlaceOfBirth.State, identity.PlaceOfBirth.CountryName)
	} else {
		fmt.Printf("\tBorn in %s\n", identity.PlaceOfBirth.CountryName)
	}
}
