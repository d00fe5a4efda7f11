package handler

import (
	"fmt"
	"strings"

	dErrors "codice/pkg/domain-errors"
)

// maxBatchSize caps one batch request; larger datasets should be chunked by
// the caller.
const maxBatchSize = 5000

// CodeRequest is the body of the validate and extract endpoints.
type CodeRequest struct {
	Code string `json:"code"`
}

func (r *CodeRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func (r *CodeRequest) Validate() error {
	if r.Code == "" {
		return dErrors.New(dErrors.CodeBadRequest, "code is required")
	}
	return nil
}

// BatchRequest is the body of the batch cleaning endpoint.
type BatchRequest struct {
	Codes []string `json:"codes"`
}

func (r *BatchRequest) Normalize() {
	for i, code := range r.Codes {
		r.Codes[i] = strings.ToUpper(strings.TrimSpace(code))
	}
}

func (r *BatchRequest) Validate() error {
	if len(r.Codes) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "codes must contain at least one entry")
	}
	if len(r.Codes) > maxBatchSize {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("batch size %d exceeds the maximum of %d", len(r.Codes), maxBatchSize))
	}
	return nil
}
