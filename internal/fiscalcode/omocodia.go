package fiscalcode

// Canonical reverses omocodia substitutions, restoring every digit-bearing
// position to its digit form. Codes without substitutions are their own
// canonical form, which is the common case for real codes.
//
// Parse has already rejected letters outside the omocodia table, so the
// reversal itself cannot fail. The check character is left untouched: it was
// computed over the substituted form and must be verified against it.
func (c Code) Canonical() Code {
	// Fast path: nothing to restore.
	substituted := false
	for _, i := range digitPositions {
		if !isDigit(c[i]) {
			substituted = true
			break
		}
	}
	if !substituted {
		return c
	}

	b := []byte(c)
	for _, i := range digitPositions {
		if d, ok := omocodiaDigits[b[i]]; ok {
			b[i] = d
		}
	}
	return Code(b)
}

// IsCanonical reports whether the code carries no omocodia substitutions.
func (c Code) IsCanonical() bool {
	for _, i := range digitPositions {
		if !isDigit(c[i]) {
			return false
		}
	}
	return true
}

// Substitute applies omocodia substitution to the digit-bearing positions
// listed in positions (0-based indices into the code) and recomputes the
// check character for the substituted form. Used by tests to build collision
// variants of a canonical code; real substitution order (rightmost first) is
// the registry's concern, not ours.
func Substitute(c Code, positions ...int) Code {
	b := []byte(c)
	for _, i := range positions {
		if isDigit(b[i]) {
			b[i] = omocodiaLetters[b[i]-'0']
		}
	}
	b[Length-1] = checkCharacter(b[:Length-1])
	return Code(b)
}
