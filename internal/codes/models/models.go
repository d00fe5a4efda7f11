// Package models defines the decoded identity returned by the codes service
// and the per-code outcomes emitted by batch cleaning.
package models

import (
	"time"

	"codice/internal/fiscalcode"
)

// PlaceOfBirth is the resolved location behind the 4-character place code.
// City and State are empty for foreign-birth codes.
type PlaceOfBirth struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// DecodedIdentity is the extraction result for a checksum-validated code.
// It is never constructed from a code that failed validation.
type DecodedIdentity struct {
	Code          string            `json:"code"`
	CanonicalCode string            `json:"canonicalCode"`
	BornOn        time.Time         `json:"bornOn"`
	Gender        fiscalcode.Gender `json:"gender"`
	PlaceCode     string            `json:"placeCode"`
	PlaceOfBirth  PlaceOfBirth      `json:"placeOfBirth"`
}

// Outcome is the per-code result of a batch cleaning run. Invalid input and
// incomplete reference data stay distinguishable through ErrorCode so
// downstream consumers can route records differently.
type Outcome struct {
	Code      string           `json:"code"`
	Valid     bool             `json:"valid"`
	ErrorCode string           `json:"errorCode,omitempty"`
	Identity  *DecodedIdentity `json:"identity,omitempty"`
	CheckedAt time.Time        `json:"checkedAt"`
}
