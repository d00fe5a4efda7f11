// Package handler exposes fiscal code validation, extraction, batch
// cleaning, and place lookup over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codice/internal/codes/models"
	placemodels "codice/internal/places/models"
	"codice/internal/requestcontext"
	"codice/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for fiscal code operations.
type Service interface {
	Validate(ctx context.Context, code string) bool
	Extract(ctx context.Context, code string) (*models.DecodedIdentity, error)
	CleanBatch(ctx context.Context, codes []string) ([]models.Outcome, error)
	LookupPlace(ctx context.Context, code string) (*placemodels.Place, error)
}

// Handler handles fiscal code endpoints.
type Handler struct {
	logger *slog.Logger
	codes  Service
}

// New creates a new codes Handler.
func New(codes Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		codes:  codes,
	}
}

// Register registers the code routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/codes/validate", h.handleValidate)
	r.Post("/codes/extract", h.handleExtract)
	r.Post("/codes/batch", h.handleBatch)
	r.Get("/places/{code}", h.handleLookupPlace)
}

// handleValidate answers with a bare verdict. Invalid codes are a normal
// outcome here, never an error status.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{
		Code:  req.Code,
		Valid: h.codes.Validate(ctx, req.Code),
	})
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	identity, err := h.codes.Extract(ctx, req.Code)
	if err != nil {
		h.logger.WarnContext(ctx, "extraction failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, identity)
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcomes, err := h.codes.CleanBatch(ctx, req.Codes)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch cleaning failed",
			"request_id", requestID,
			"batch_size", len(req.Codes),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newBatchResponse(outcomes))
}

func (h *Handler) handleLookupPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	place, err := h.codes.LookupPlace(ctx, chi.URLParam(r, "code"))
	if err != nil {
		h.logger.WarnContext(ctx, "place lookup failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, place)
}
