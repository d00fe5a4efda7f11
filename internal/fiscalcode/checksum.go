package fiscalcode

import (
	"fmt"

	dErrors "codice/pkg/domain-errors"
)

// checkCharacter computes the expected 16th character from the first 15
// bytes of a code, exactly as given: the odd/even tables cover both digit
// and letter forms at every position, so omocodia-substituted codes are
// summed without prior normalization.
func checkCharacter(first15 []byte) byte {
	sum := 0
	for i, c := range first15 {
		// Positions are 1-based in the algorithm's definition.
		if (i+1)%2 == 0 {
			sum += evenValues[c]
		} else {
			sum += oddValues[c]
		}
	}
	return remainderChars[sum%26]
}

// VerifyChecksum recomputes the check character over the original,
// non-normalized first 15 characters and compares it with the supplied 16th.
// Normalizing before this step would silently break omocodia-affected codes:
// their check character was computed against the substituted letters.
//
// Errors: CodeChecksumMismatch when the characters disagree.
func VerifyChecksum(c Code) error {
	expected := checkCharacter([]byte(c[:Length-1]))
	if actual := c.CheckCharacter(); actual != expected {
		return dErrors.New(dErrors.CodeChecksumMismatch,
			fmt.Sprintf("check character is %q, expected %q", actual, expected))
	}
	return nil
}

// temporaryCheckDigit computes the Luhn-style check digit of a provisional
// numeric code from its first 10 digits.
func temporaryCheckDigit(digits string) byte {
	total := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		total += d
	}
	return byte((10-total%10)%10) + '0'
}

// ValidTemporary reports whether raw is a valid 11-digit provisional fiscal
// code. Provisional codes carry no identity attributes, so they validate but
// never decode.
func ValidTemporary(raw string) bool {
	if len(raw) != TemporaryLength {
		return false
	}
	for i := 0; i < TemporaryLength; i++ {
		if !isDigit(raw[i]) {
			return false
		}
	}
	return raw[TemporaryLength-1] == temporaryCheckDigit(raw[:TemporaryLength-1])
}
