package fiscalcode

import (
	"fmt"
	"strings"
	"time"

	dErrors "codice/pkg/domain-errors"
)

// Gender is encoded in-band through the +40 day offset; there is no
// dedicated gender field in the code.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Decoded carries the attributes extracted from a checksum-validated code.
// It is never produced for a code that failed validation.
type Decoded struct {
	Code      Code
	Canonical Code
	BornOn    time.Time
	Gender    Gender
	PlaceCode string
}

// Decoder extracts identity attributes from fiscal codes. The two-digit
// birth year loses its century, so the resolution policy is an explicit,
// configurable part of the decoder rather than a hidden assumption.
type Decoder struct {
	now            func() time.Time
	strictCalendar bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithReferenceDate pins the reference date used to resolve the birth-year
// century. Years resolve to the most recent century that does not place the
// birth date in the future relative to this reference.
func WithReferenceDate(t time.Time) Option {
	return func(d *Decoder) {
		d.now = func() time.Time { return t }
	}
}

// WithStrictCalendar rejects day/month combinations that do not exist, such
// as February 30. The default is lenient: the day is only required to fall
// in 1-31, matching how registry data has historically been cleaned.
func WithStrictCalendar() Option {
	return func(d *Decoder) {
		d.strictCalendar = true
	}
}

// New constructs a Decoder. Without options the reference date is the wall
// clock and calendar validation is lenient.
func New(opts ...Option) *Decoder {
	d := &Decoder{now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Validate reports whether raw is a valid fiscal code. Provisional 11-digit
// codes are accepted. Every failure collapses to false; callers that need
// the failure kind use Decode.
func (d *Decoder) Validate(raw string) bool {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == TemporaryLength {
		return ValidTemporary(s)
	}
	_, err := d.Decode(raw)
	return err == nil
}

// Decode validates raw and extracts birth date, gender, and the place code.
// The checksum is verified against the characters exactly as given, while
// field extraction reads the canonical (omocodia-reversed) form; collapsing
// the two passes would corrupt checksum results for substituted codes.
//
// Errors: CodeShape, CodeChecksumMismatch, CodeInvalidMonth, CodeInvalidDay.
func (d *Decoder) Decode(raw string) (*Decoded, error) {
	code, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	canonical := code.Canonical()
	if err := VerifyChecksum(code); err != nil {
		return nil, err
	}

	month, ok := monthByLetter[canonical[8]]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidMonth,
			fmt.Sprintf("%q is not a month letter", canonical[8]))
	}

	dayValue := int(canonical[9]-'0')*10 + int(canonical[10]-'0')
	day, gender, err := resolveDay(dayValue)
	if err != nil {
		return nil, err
	}

	yy := int(canonical[6]-'0')*10 + int(canonical[7]-'0')
	year := resolveYear(yy, d.now())

	bornOn := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.strictCalendar && (bornOn.Day() != day || bornOn.Month() != month) {
		return nil, dErrors.New(dErrors.CodeInvalidDay,
			fmt.Sprintf("day %d does not exist in %s %d", day, month, year))
	}

	return &Decoded{
		Code:      code,
		Canonical: canonical,
		BornOn:    bornOn,
		Gender:    gender,
		PlaceCode: string(canonical[11:15]),
	}, nil
}

// resolveDay strips the +40 female offset and derives gender. Values 1-31
// are male, 41-71 female; everything else is out of range.
func resolveDay(value int) (int, Gender, error) {
	switch {
	case value >= 1 && value <= 31:
		return value, GenderMale, nil
	case value >= 41 && value <= 71:
		return value - 40, GenderFemale, nil
	default:
		return 0, "", dErrors.New(dErrors.CodeInvalidDay,
			fmt.Sprintf("day value %02d is outside 1-31 and 41-71", value))
	}
}

// resolveYear picks the most recent century that keeps the birth year from
// landing in the future relative to the reference date.
func resolveYear(yy int, reference time.Time) int {
	refYear := reference.Year()
	year := refYear/100*100 + yy
	if year > refYear {
		year -= 100
	}
	return year
}
