// Package fiscalcode decodes and validates Italian fiscal codes: the
// 16-character personal identifier that encodes name fragments, birth date,
// gender, and place of birth behind a check character and the omocodia
// anti-collision substitution scheme.
//
// Everything in this package is pure and safe for concurrent use; the
// character tables are immutable after process start.
package fiscalcode

import (
	"fmt"
	"strings"

	dErrors "codice/pkg/domain-errors"
)

// Length is the fixed length of a standard fiscal code.
const Length = 16

// TemporaryLength is the length of a provisional all-numeric code.
const TemporaryLength = 11

// Code is a structurally well-formed fiscal code: exactly 16 characters,
// uppercase, each position drawn from its allowed alphabet. A Code has not
// necessarily passed checksum validation.
type Code string

// Parse normalizes raw input (trims whitespace, uppercases) and enforces the
// structural shape: 16 characters, letters in the alphabetic positions,
// digits or omocodia letters in the seven digit-bearing positions.
//
// Errors: CodeShape for any structural violation.
func Parse(raw string) (Code, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != Length {
		return "", dErrors.New(dErrors.CodeShape,
			fmt.Sprintf("code must be %d characters, got %d", Length, len(s)))
	}
	for _, i := range alphaPositions {
		if !isUpperLetter(s[i]) {
			return "", dErrors.New(dErrors.CodeShape,
				fmt.Sprintf("position %d must be a letter", i+1))
		}
	}
	for _, i := range digitPositions {
		c := s[i]
		if isDigit(c) {
			continue
		}
		if _, ok := omocodiaDigits[c]; !ok {
			return "", dErrors.New(dErrors.CodeShape,
				fmt.Sprintf("position %d holds %q, which is neither a digit nor an omocodia letter", i+1, c))
		}
	}
	return Code(s), nil
}

// String returns the uppercase textual form.
func (c Code) String() string { return string(c) }

// CheckCharacter returns the 16th character as supplied. The check character
// is canonically a letter and never subject to omocodia substitution.
func (c Code) CheckCharacter() byte { return c[Length-1] }

// PlaceCode returns the 4-character place-of-birth code from the canonical
// form of c (letter plus three digits, e.g. "H501" or "Z219").
func (c Code) PlaceCode() string {
	return string(c.Canonical()[11:15])
}
