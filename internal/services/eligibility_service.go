package services

import (
	"errors"

	"cap-recommender/internal/models"
)

var ErrInvalidProfile = errors.New("caste and seat type are required")

// seatTypeCodes maps the seat type a student applies under onto the suffix
// letter used inside category codes (GOPENH, GOPENO, GOPENS).
var seatTypeCodes = map[string]string{
	models.SeatTypeHome:     "H",
	models.SeatTypeOther:    "O",
	models.SeatTypeState:    "S",
	models.SeatTypeAllIndia: "AI",
}

// seatTypeLevels maps the seat type onto the substring expected in the
// cutoff record's level column.
var seatTypeLevels = map[string]string{
	models.SeatTypeHome:     "home",
	models.SeatTypeOther:    "other",
	models.SeatTypeState:    "state",
	models.SeatTypeAllIndia: "all india",
}

// EligibilityResolver builds category match patterns from a student profile.
//
// Category codes in cutoff reports compose a gender or reservation prefix,
// the caste code and a seat type suffix: GOPENS is the general OPEN state
// seat, LSCH the ladies SC home university seat, PWDROBCH the PWD round
// OBC home seat. Special reservations replace the gender prefix; ORPHAN
// and TFWS seats are caste-blind and match on the bare code.
type EligibilityResolver struct{}

// NewEligibilityResolver creates a new eligibility resolver
func NewEligibilityResolver() EligibilityResolverInterface {
	return &EligibilityResolver{}
}

// Resolve normalizes the profile and returns the OR-combined category
// patterns plus the seat level filter for it
func (r *EligibilityResolver) Resolve(profile models.StudentProfile) (models.EligibilityFilter, error) {
	p := profile.Normalized()

	// Empty caste or seat type is the only invalid input. Rank bounds are the
	// HTTP layer's concern; unknown codes degrade to zero matches.
	if p.Caste == "" || p.SeatType == "" {
		return models.EligibilityFilter{}, ErrInvalidProfile
	}

	genderCode := "L"
	if p.Gender == models.GenderMale {
		genderCode = "G"
	}

	seatCode, ok := seatTypeCodes[p.SeatType]
	if !ok {
		seatCode = "S"
	}

	var patterns []string
	switch p.SpecialReservation {
	case models.ReservationPWD:
		// PWD seats appear both with and without the round marker
		patterns = []string{
			"PWD" + p.Caste + seatCode,
			"PWDR" + p.Caste + seatCode,
		}
	case models.ReservationDefence:
		patterns = []string{
			"DEFR" + p.Caste + seatCode,
			"DEF" + p.Caste + seatCode,
		}
	case models.ReservationOrphan:
		patterns = []string{"ORPHAN"}
	case models.ReservationTFWS:
		patterns = []string{"TFWS"}
	case "":
		patterns = []string{genderCode + p.Caste + seatCode}
	default:
		patterns = []string{p.SpecialReservation + p.Caste + seatCode}
	}

	// Unrecognized seat types carry no level filter; their records match
	// any admission level.
	level := seatTypeLevels[p.SeatType]

	return models.EligibilityFilter{
		CategoryPatterns: patterns,
		Level:            level,
	}, nil
}
