package fiscalcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "codice/pkg/domain-errors"
)

// ParseSuite covers structural shape validation before any decoding.
type ParseSuite struct {
	suite.Suite
}

func TestParseSuite(t *testing.T) {
	suite.Run(t, new(ParseSuite))
}

func (s *ParseSuite) TestAcceptsMixedCaseAndWhitespace() {
	code, err := Parse("  gntmtt99c27h501f\n")
	s.Require().NoError(err)
	s.Equal(Code("GNTMTT99C27H501F"), code)
}

func (s *ParseSuite) TestRejectsWrongLength() {
	for name, raw := range map[string]string{
		"empty":        "",
		"fifteen":      "GNTMTT99C27H501",
		"seventeen":    "GNTMTT99C27H501FX",
		"way too long": strings.Repeat("A", 40),
	} {
		s.Run(name, func() {
			_, err := Parse(raw)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeShape))
		})
	}
}

func (s *ParseSuite) TestRejectsDigitInAlphabeticPosition() {
	// Month position holds a digit.
	_, err := Parse("GNTMTT99127H501F")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeShape))

	// Surname block holds a digit.
	_, err = Parse("G1TMTT99C27H501F")
	s.True(dErrors.HasCode(err, dErrors.CodeShape))
}

func (s *ParseSuite) TestRejectsNonOmocodiaLetterInDigitPosition() {
	// 'A' is not in the omocodia table; it can never stand in for a digit.
	_, err := Parse("GNTMTT9AC27H501F")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeShape))
}

func (s *ParseSuite) TestAcceptsOmocodiaLettersInDigitPositions() {
	code, err := Parse("GNTMTT99C27HR0MS")
	s.Require().NoError(err)
	s.Equal("H501", code.PlaceCode())
}
