package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr       string
	PlacesFile string

	DatabaseURL string
	RedisURL    string

	KafkaBrokers string
	OutcomeTopic string

	// ReferenceDate anchors two-digit year resolution. Zero means "now".
	ReferenceDate  time.Time
	StrictCalendar bool

	BatchConcurrency int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CODICE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	placesFile := os.Getenv("PLACES_FILE")
	if placesFile == "" {
		placesFile = "testdata/places.json"
	}

	topic := os.Getenv("OUTCOME_TOPIC")
	if topic == "" {
		topic = "codes.outcomes"
	}

	var referenceDate time.Time
	if raw := os.Getenv("REFERENCE_DATE"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			referenceDate = parsed
		}
	}

	concurrency := 8
	if raw := os.Getenv("BATCH_CONCURRENCY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Server{
		Addr:             addr,
		PlacesFile:       placesFile,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		OutcomeTopic:     topic,
		ReferenceDate:    referenceDate,
		StrictCalendar:   os.Getenv("STRICT_CALENDAR") == "true",
		BatchConcurrency: concurrency,
	}
}
