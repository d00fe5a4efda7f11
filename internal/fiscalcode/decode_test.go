package fiscalcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "codice/pkg/domain-errors"
)

// referenceDate pins century resolution so tests do not depend on the wall
// clock.
var referenceDate = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

// DecodeSuite covers field extraction from checksum-validated codes.
type DecodeSuite struct {
	suite.Suite
	decoder *Decoder
}

func (s *DecodeSuite) SetupTest() {
	s.decoder = New(WithReferenceDate(referenceDate))
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(DecodeSuite))
}

func (s *DecodeSuite) TestDecodeMale() {
	decoded, err := s.decoder.Decode("GNTMTT99C27H501F")
	s.Require().NoError(err)
	s.Equal(time.Date(1999, time.March, 27, 0, 0, 0, 0, time.UTC), decoded.BornOn)
	s.Equal(GenderMale, decoded.Gender)
	s.Equal("H501", decoded.PlaceCode)
	s.Equal(decoded.Code, decoded.Canonical)
}

func (s *DecodeSuite) TestDecodeFemale() {
	// Day 65 encodes day 25 with the female offset.
	decoded, err := s.decoder.Decode("MKSKRS92L65Z219S")
	s.Require().NoError(err)
	s.Equal(time.Date(1992, time.July, 25, 0, 0, 0, 0, time.UTC), decoded.BornOn)
	s.Equal(GenderFemale, decoded.Gender)
	s.Equal("Z219", decoded.PlaceCode)
}

func (s *DecodeSuite) TestOmocodiaVariantsDecodeIdentically() {
	base, err := s.decoder.Decode("GNTMTT99C27H501F")
	s.Require().NoError(err)

	for _, variant := range []string{"GNTMTT99C27H50MX", "GNTMTT99C27HR0MS"} {
		decoded, err := s.decoder.Decode(variant)
		s.Require().NoError(err, variant)
		s.Equal(base.BornOn, decoded.BornOn)
		s.Equal(base.Gender, decoded.Gender)
		s.Equal(base.PlaceCode, decoded.PlaceCode)
		s.Equal(base.Canonical[:15], decoded.Canonical[:15])
	}
}

func (s *DecodeSuite) TestDayGenderRanges() {
	s.Run("1-31 male, 41-71 female", func() {
		for value, want := range map[int]Gender{1: GenderMale, 31: GenderMale, 41: GenderFemale, 71: GenderFemale} {
			day, gender, err := resolveDay(value)
			s.Require().NoError(err)
			s.Equal(want, gender)
			if gender == GenderFemale {
				s.Equal(value-40, day)
			} else {
				s.Equal(value, day)
			}
		}
	})

	s.Run("0, 32-40 and 72-99 are invalid", func() {
		for _, value := range []int{0, 32, 40, 72, 99} {
			_, _, err := resolveDay(value)
			s.Require().Error(err, "value %d", value)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidDay))
		}
	})
}

func (s *DecodeSuite) TestInvalidDayFromFullCode() {
	// Day 32: structurally fine, outside both gender ranges. The check
	// character is recomputed so the failure is attributable to the day.
	code := withChecksum("GNTMTT99C32H501")
	_, err := s.decoder.Decode(string(code))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidDay))
}

func (s *DecodeSuite) TestMonthLetters() {
	wantMonths := map[byte]time.Month{
		'A': time.January, 'B': time.February, 'C': time.March,
		'D': time.April, 'E': time.May, 'H': time.June,
		'L': time.July, 'M': time.August, 'P': time.September,
		'R': time.October, 'S': time.November, 'T': time.December,
	}
	for letter, want := range wantMonths {
		code := withChecksum("GNTMTT99" + string(letter) + "27H501")
		decoded, err := s.decoder.Decode(string(code))
		s.Require().NoError(err, "month letter %q", letter)
		s.Equal(want, decoded.BornOn.Month())
	}

	// Any other letter in the month position is invalid, even with a
	// checksum computed over it.
	for _, letter := range []byte{'F', 'G', 'Z'} {
		code := withChecksum("GNTMTT99" + string(letter) + "27H501")
		_, err := s.decoder.Decode(string(code))
		s.Require().Error(err, "month letter %q", letter)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidMonth))
	}
}

func (s *DecodeSuite) TestCenturyResolution() {
	s.Run("year matching the reference stays in the current century", func() {
		s.Equal(2026, resolveYear(26, referenceDate))
	})
	s.Run("year one past the reference falls back a century", func() {
		s.Equal(1927, resolveYear(27, referenceDate))
	})
	s.Run("zero year", func() {
		s.Equal(2000, resolveYear(0, referenceDate))
	})
	s.Run("caller-supplied reference moves the boundary", func() {
		s.Equal(1985, resolveYear(85, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
		s.Equal(1885, resolveYear(85, time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func (s *DecodeSuite) TestLenientCalendarAcceptsFebruary30() {
	// Lenient validation only constrains the day to 1-31; impossible
	// month/day combinations pass and normalize forward.
	code := withChecksum("GNTMTT99B30H501")
	_, err := s.decoder.Decode(string(code))
	s.NoError(err)
}

func (s *DecodeSuite) TestStrictCalendarRejectsFebruary30() {
	strict := New(WithReferenceDate(referenceDate), WithStrictCalendar())
	code := withChecksum("GNTMTT99B30H501")
	_, err := strict.Decode(string(code))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidDay))

	// Real dates still pass.
	_, err = strict.Decode("GNTMTT99C27H501F")
	s.NoError(err)
}

func (s *DecodeSuite) TestValidate() {
	s.Run("valid codes", func() {
		for _, code := range []string{
			"GNTMTT99C27H501F",
			"MRARSS80A01H501T",
			"BNCLRD69T61A783M",
			"GNTMTT99C27H50MX",
			"GNTMTT99C27HR0MS",
			"12345678903", // provisional
		} {
			s.True(s.decoder.Validate(code), code)
		}
	})

	s.Run("invalid codes collapse to false", func() {
		for _, code := range []string{
			"",
			"INVALIDCODE",
			"GNTMTT99C27H501K", // checksum
			"GNTMTT99C72H501F", // day range (and checksum, either way false)
			"12345678900",      // provisional check digit
			"TOOSHORT",
		} {
			s.False(s.decoder.Validate(code), code)
		}
	})
}

func (s *DecodeSuite) TestProvisionalCodesNeverDecode() {
	_, err := s.decoder.Decode("12345678903")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeShape))
}

// withChecksum appends the computed check character to a 15-character prefix.
func withChecksum(prefix string) Code {
	return Code(prefix + string(checkCharacter([]byte(prefix))))
}
