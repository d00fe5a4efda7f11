// Package service orchestrates fiscal code validation and extraction: shape
// check, omocodia normalization, checksum verification, field extraction,
// and place-of-birth resolution against the reference table.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"codice/internal/codes/metrics"
	"codice/internal/codes/models"
	"codice/internal/codes/tracer"
	"codice/internal/fiscalcode"
	placemodels "codice/internal/places/models"
	"codice/internal/sentinel"
	dErrors "codice/pkg/domain-errors"
)

const defaultBatchConcurrency = 8

// Service is the application layer over the pure fiscalcode decoder and the
// place reference table.
type Service struct {
	decoder   *fiscalcode.Decoder
	places    PlaceStore
	publisher OutcomePublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer

	batchConcurrency int
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer attaches a tracer; tests use the no-op default.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithPublisher enables publishing of batch outcomes to a downstream topic.
func WithPublisher(p OutcomePublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithBatchConcurrency bounds how many codes of a batch decode in parallel.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New constructs the codes service.
func New(decoder *fiscalcode.Decoder, places PlaceStore, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		decoder:          decoder,
		places:           places,
		logger:           logger,
		tracer:           tracer.NewNoop(),
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate reports whether code is valid, collapsing every failure kind to
// false: shape, checksum, month, day, and an unknown place code all yield
// false. Provisional 11-digit codes are accepted. Infrastructure failures
// during place resolution also collapse to false, with a warning logged,
// because this boundary has no error channel.
func (s *Service) Validate(ctx context.Context, code string) bool {
	ctx, span := s.tracer.Start(ctx, tracer.SpanValidate,
		tracer.String(tracer.AttrCodeHash, tracer.HashCode(code)))

	valid := false
	if fiscalcode.ValidTemporary(strings.TrimSpace(code)) {
		valid = true
	} else if _, err := s.extract(ctx, code); err == nil {
		valid = true
	}
	span.SetAttributes(tracer.Bool(tracer.AttrValid, valid))
	span.End(nil)

	if s.metrics != nil {
		label := "false"
		if valid {
			label = "true"
		}
		s.metrics.Validations.WithLabelValues(label).Inc()
	}
	return valid
}

// Extract validates code and returns its decoded identity with the place of
// birth resolved.
//
// Errors: CodeShape, CodeChecksumMismatch, CodeInvalidMonth, CodeInvalidDay,
// CodeUnknownPlace for decode failures; CodeUnavailable when the place store
// is unreachable.
func (s *Service) Extract(ctx context.Context, code string) (*models.DecodedIdentity, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanExtract,
		tracer.String(tracer.AttrCodeHash, tracer.HashCode(code)))

	identity, err := s.extract(ctx, code)
	span.End(err)

	if s.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = string(dErrors.CodeOf(err))
		}
		s.metrics.Extractions.WithLabelValues(outcome).Inc()
		s.metrics.ExtractLatency.Observe(time.Since(start).Seconds())
	}
	return identity, err
}

func (s *Service) extract(ctx context.Context, code string) (*models.DecodedIdentity, error) {
	decoded, err := s.decoder.Decode(code)
	if err != nil {
		return nil, err
	}

	place, err := s.resolvePlace(ctx, decoded.PlaceCode)
	if err != nil {
		return nil, err
	}

	return &models.DecodedIdentity{
		Code:          decoded.Code.String(),
		CanonicalCode: decoded.Canonical.String(),
		BornOn:        decoded.BornOn,
		Gender:        decoded.Gender,
		PlaceCode:     decoded.PlaceCode,
		PlaceOfBirth: models.PlaceOfBirth{
			CountryCode: place.CountryCode,
			CountryName: place.CountryName,
			City:        place.City,
			State:       place.State,
		},
	}, nil
}

// resolvePlace maps the 4-character place code to its reference record. A
// missing entry is CodeUnknownPlace, kept distinct from shape and checksum
// failures: the code can be arithmetically valid while the supplied table is
// simply incomplete.
func (s *Service) resolvePlace(ctx context.Context, placeCode string) (*placemodels.Place, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanResolvePlace,
		tracer.String(tracer.AttrPlaceCode, placeCode))

	place, err := s.places.Find(ctx, placeCode)
	span.End(err)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnknownPlace,
				"place code "+placeCode+" is not in the reference table")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "place lookup failed")
	}
	return place, nil
}

// LookupPlace exposes the place resolver directly. Unlike extraction, a miss
// here is a plain not-found on the place resource.
func (s *Service) LookupPlace(ctx context.Context, code string) (*placemodels.Place, error) {
	if len(code) != 4 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "place codes are 4 characters")
	}
	place, err := s.resolvePlace(ctx, code)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnknownPlace) {
			return nil, dErrors.New(dErrors.CodeNotFound, "place "+code+" not found")
		}
		return nil, err
	}
	return place, nil
}

// CleanBatch decodes a list of codes with bounded concurrency and returns
// one outcome per input, in input order. When a publisher is configured,
// each outcome is also delivered to the downstream topic; publish failures
// are logged and counted but never fail the batch.
func (s *Service) CleanBatch(ctx context.Context, codes []string) ([]models.Outcome, error) {
	if len(codes) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "batch must contain at least one code")
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanBatch,
		tracer.Int64(tracer.AttrBatchSize, int64(len(codes))))
	defer span.End(nil)

	if s.metrics != nil {
		s.metrics.BatchSizes.Observe(float64(len(codes)))
	}

	outcomes := make([]models.Outcome, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, code := range codes {
		g.Go(func() error {
			outcomes[i] = s.cleanOne(gctx, code)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch cancelled")
	}
	return outcomes, nil
}

func (s *Service) cleanOne(ctx context.Context, code string) models.Outcome {
	outcome := models.Outcome{
		Code:      code,
		CheckedAt: time.Now().UTC(),
	}

	identity, err := s.Extract(ctx, code)
	switch {
	case err == nil:
		outcome.Valid = true
		outcome.Identity = identity
	case fiscalcode.ValidTemporary(strings.TrimSpace(code)):
		// Provisional codes validate but carry no identity.
		outcome.Valid = true
	default:
		outcome.ErrorCode = string(dErrors.CodeOf(err))
	}

	s.publish(ctx, &outcome)
	return outcome
}

func (s *Service) publish(ctx context.Context, outcome *models.Outcome) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, outcome); err != nil {
		s.logger.WarnContext(ctx, "outcome publish failed",
			"error", err,
			"code_hash", tracer.HashCode(outcome.Code),
		)
		if s.metrics != nil {
			s.metrics.PublishFailures.Inc()
		}
		return
	}
	if s.metrics != nil {
		s.metrics.OutcomesPublished.Inc()
	}
}
