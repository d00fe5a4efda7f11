// Package models defines the place-of-birth reference records keyed by the
// 4-character place code embedded in fiscal codes (Belfiore codes for Italian
// municipalities, Z-prefixed codes for foreign countries).
package models

// Place is one entry of the read-only reference table. City and State are
// empty for foreign-country codes, which identify a country rather than a
// municipality.
type Place struct {
	Code        string `json:"code"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// Foreign reports whether the place identifies a country rather than an
// Italian municipality.
func (p *Place) Foreign() bool {
	return len(p.Code) > 0 && p.Code[0] == 'Z'
}
