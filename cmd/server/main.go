package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	codeshandler "codice/internal/codes/handler"
	codesmetrics "codice/internal/codes/metrics"
	"codice/internal/codes/publisher"
	"codice/internal/codes/service"
	"codice/internal/fiscalcode"
	"codice/internal/places/loader"
	placesmetrics "codice/internal/places/metrics"
	placesstore "codice/internal/places/store"
	"codice/internal/platform/config"
	"codice/internal/platform/database"
	"codice/internal/platform/health"
	"codice/internal/platform/httpserver"
	"codice/internal/platform/kafka"
	"codice/internal/platform/kafka/producer"
	"codice/internal/platform/logger"
	"codice/internal/platform/metrics"
	"codice/internal/platform/redis"
	httptransport "codice/internal/transport/http"
)

const (
	placeCacheTTL     = 24 * time.Hour
	poolStatsInterval = 15 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing codice",
		"addr", cfg.Addr,
		"places_file", cfg.PlacesFile,
		"strict_calendar", cfg.StrictCalendar,
	)

	ctx := context.Background()

	pool, err := database.New(database.Config{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	healthHandler := health.New(environment())

	var placeStore placesstore.Store
	if pool != nil {
		placeStore = placesstore.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("postgres", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(checkCtx)
		})
		log.Info("using postgres place store")
	} else {
		placeStore = placesstore.NewInMemory()
		log.Info("no DATABASE_URL configured, using in-memory place store")
	}

	placeMetrics := placesmetrics.New()

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		placeStore = placesstore.NewRedisCache(redisClient.Client, placeStore, placeCacheTTL, placeMetrics)
		healthHandler.RegisterCheck("redis", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(checkCtx)
		})
		go recordPoolStats(ctx, redisClient)
		log.Info("redis place cache enabled")
	}

	if count, err := placeStore.Count(ctx); err != nil {
		log.Error("place store count failed", "error", err)
		os.Exit(1)
	} else if count == 0 {
		seeded, err := loader.Seed(ctx, placeStore, cfg.PlacesFile)
		if err != nil {
			log.Error("place table seeding failed", "error", err, "file", cfg.PlacesFile)
			os.Exit(1)
		}
		log.Info("place table seeded", "places", seeded)
	} else {
		log.Info("place table already populated", "places", count)
	}

	var decoderOpts []fiscalcode.Option
	if !cfg.ReferenceDate.IsZero() {
		decoderOpts = append(decoderOpts, fiscalcode.WithReferenceDate(cfg.ReferenceDate))
	}
	if cfg.StrictCalendar {
		decoderOpts = append(decoderOpts, fiscalcode.WithStrictCalendar())
	}
	decoder := fiscalcode.New(decoderOpts...)

	serviceOpts := []service.Option{
		service.WithMetrics(codesmetrics.New()),
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	}
	if cfg.KafkaBrokers != "" {
		kafkaProducer, err := producer.New(producer.Config{
			Brokers:         cfg.KafkaBrokers,
			Acks:            "all",
			Retries:         3,
			DeliveryTimeout: 30 * time.Second,
		}, log)
		if err != nil {
			log.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaProducer.Close()

		serviceOpts = append(serviceOpts,
			service.WithPublisher(publisher.NewKafka(kafkaProducer, cfg.OutcomeTopic, log)))

		kafkaCheck := kafka.NewHealthChecker(cfg.KafkaBrokers)
		healthHandler.RegisterCheck("kafka", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return kafkaCheck.Check(checkCtx)
		})
		log.Info("kafka outcome publishing enabled", "topic", cfg.OutcomeTopic)
	}

	codesService := service.New(decoder, placeStore, log, serviceOpts...)

	router := httptransport.NewRouter(httptransport.Deps{
		Codes:   codeshandler.New(codesService, log),
		Health:  healthHandler,
		Metrics: metrics.New(),
		Logger:  log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// recordPoolStats feeds redis connection pool gauges until ctx is cancelled.
func recordPoolStats(ctx context.Context, client *redis.Client) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			client.RecordPoolStats()
		}
	}
}

func environment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "development"
}
