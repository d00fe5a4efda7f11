package handler

import "codice/internal/codes/models"

// ValidateResponse reports the boolean verdict for one code.
type ValidateResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// BatchResponse carries one outcome per submitted code, in input order.
type BatchResponse struct {
	Outcomes []models.Outcome `json:"outcomes"`
	Valid    int              `json:"valid"`
	Invalid  int              `json:"invalid"`
}

func newBatchResponse(outcomes []models.Outcome) *BatchResponse {
	res := &BatchResponse{Outcomes: outcomes}
	for _, outcome := range outcomes {
		if outcome.Valid {
			res.Valid++
		} else {
			res.Invalid++
		}
	}
	return res
}
