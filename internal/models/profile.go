package models

import "strings"

// Caste category codes used by the CAP admission rounds.
const (
	CasteOpen = "OPEN"
	CasteOBC  = "OBC"
	CasteSC   = "SC"
	CasteST   = "ST"
	CasteEWS  = "EWS"
	CasteNT1  = "NT1"
	CasteNT2  = "NT2"
	CasteNT3  = "NT3"
	CasteSBC  = "SBC"
	CasteSEBC = "SEBC"
	CasteVJ   = "VJ"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Seat type codes: Home university, Other university, State level, All India.
const (
	SeatTypeHome     = "H"
	SeatTypeOther    = "O"
	SeatTypeState    = "S"
	SeatTypeAllIndia = "AI"
)

// Special reservation codes that override the normal gender/caste encoding.
const (
	ReservationPWD     = "PWD"
	ReservationDefence = "DEFENCE"
	ReservationOrphan  = "ORPHAN"
	ReservationTFWS    = "TFWS"
)

// StudentProfile is the immutable eligibility input for a suggestion query.
// Fields are normalized (upper-cased, trimmed) by the resolver before use.
type StudentProfile struct {
	Rank               int
	Caste              string
	Gender             string
	SeatType           string
	SpecialReservation string
}

// Normalized returns a copy with every string field upper-cased and trimmed.
func (p StudentProfile) Normalized() StudentProfile {
	return StudentProfile{
		Rank:               p.Rank,
		Caste:              strings.ToUpper(strings.TrimSpace(p.Caste)),
		Gender:             strings.ToUpper(strings.TrimSpace(p.Gender)),
		SeatType:           strings.ToUpper(strings.TrimSpace(p.SeatType)),
		SpecialReservation: strings.ToUpper(strings.TrimSpace(p.SpecialReservation)),
	}
}

// EligibilityFilter is the resolver's output: the category substring patterns
// an eligible cutoff record must contain (OR-combined) and an optional level
// substring requirement. An empty Level matches any level.
type EligibilityFilter struct {
	CategoryPatterns []string
	Level            string
}
