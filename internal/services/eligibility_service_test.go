package services

import (
	"testing"

	"cap-recommender/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestEligibilityResolver(t *testing.T) {
	suite.Run(t, new(EligibilityResolverSuite))
}

type EligibilityResolverSuite struct {
	suite.Suite
	resolver EligibilityResolverInterface
}

func (s *EligibilityResolverSuite) SetupTest() {
	s.resolver = NewEligibilityResolver()
}

func (s *EligibilityResolverSuite) TestResolve_RegularSeats() {
	tests := []struct {
		name         string
		profile      models.StudentProfile
		wantPatterns []string
		wantLevel    string
	}{
		{
			name:         "male open state",
			profile:      models.StudentProfile{Rank: 15000, Caste: "OPEN", Gender: "MALE", SeatType: "S"},
			wantPatterns: []string{"GOPENS"},
			wantLevel:    "state",
		},
		{
			name:         "female sc home",
			profile:      models.StudentProfile{Rank: 15000, Caste: "SC", Gender: "FEMALE", SeatType: "H"},
			wantPatterns: []string{"LSCH"},
			wantLevel:    "home",
		},
		{
			name:         "obc other university",
			profile:      models.StudentProfile{Rank: 15000, Caste: "OBC", Gender: "MALE", SeatType: "O"},
			wantPatterns: []string{"GOBCO"},
			wantLevel:    "other",
		},
		{
			name:         "all india seat",
			profile:      models.StudentProfile{Rank: 15000, Caste: "OPEN", Gender: "MALE", SeatType: "AI"},
			wantPatterns: []string{"GOPENAI"},
			wantLevel:    "all india",
		},
		{
			name:         "missing gender defaults to ladies prefix",
			profile:      models.StudentProfile{Rank: 15000, Caste: "OPEN", SeatType: "S"},
			wantPatterns: []string{"LOPENS"},
			wantLevel:    "state",
		},
		{
			name:         "lowercase input is normalized",
			profile:      models.StudentProfile{Rank: 15000, Caste: " open ", Gender: "male", SeatType: "s"},
			wantPatterns: []string{"GOPENS"},
			wantLevel:    "state",
		},
		{
			name:         "unknown seat type applies no level filter",
			profile:      models.StudentProfile{Rank: 15000, Caste: "OPEN", Gender: "MALE", SeatType: "X"},
			wantPatterns: []string{"GOPENS"},
			wantLevel:    "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			filter, err := s.resolver.Resolve(tt.profile)
			s.NoError(err)
			s.Equal(tt.wantPatterns, filter.CategoryPatterns)
			s.Equal(tt.wantLevel, filter.Level)
		})
	}
}

func (s *EligibilityResolverSuite) TestResolve_SpecialReservations() {
	tests := []struct {
		name         string
		profile      models.StudentProfile
		wantPatterns []string
	}{
		{
			name:         "pwd matches both pattern variants",
			profile:      models.StudentProfile{Rank: 50000, Caste: "OPEN", Gender: "MALE", SeatType: "S", SpecialReservation: "PWD"},
			wantPatterns: []string{"PWDOPENS", "PWDROPENS"},
		},
		{
			name:         "defence matches round variant first",
			profile:      models.StudentProfile{Rank: 50000, Caste: "OBC", Gender: "FEMALE", SeatType: "H", SpecialReservation: "DEFENCE"},
			wantPatterns: []string{"DEFROBCH", "DEFOBCH"},
		},
		{
			name:         "orphan ignores caste and seat",
			profile:      models.StudentProfile{Rank: 50000, Caste: "SC", Gender: "MALE", SeatType: "S", SpecialReservation: "ORPHAN"},
			wantPatterns: []string{"ORPHAN"},
		},
		{
			name:         "tfws ignores caste and seat",
			profile:      models.StudentProfile{Rank: 50000, Caste: "OPEN", Gender: "MALE", SeatType: "H", SpecialReservation: "TFWS"},
			wantPatterns: []string{"TFWS"},
		},
		{
			name:         "unrecognized reservation used as prefix",
			profile:      models.StudentProfile{Rank: 50000, Caste: "OPEN", Gender: "MALE", SeatType: "S", SpecialReservation: "MINORITY"},
			wantPatterns: []string{"MINORITYOPENS"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			filter, err := s.resolver.Resolve(tt.profile)
			s.NoError(err)
			s.Equal(tt.wantPatterns, filter.CategoryPatterns)
		})
	}
}

func (s *EligibilityResolverSuite) TestResolve_InvalidProfiles() {
	_, err := s.resolver.Resolve(models.StudentProfile{Rank: 100, Caste: "  ", SeatType: "S"})
	s.Equal(ErrInvalidProfile, err)

	_, err = s.resolver.Resolve(models.StudentProfile{Rank: 100, Caste: "OPEN", SeatType: ""})
	s.Equal(ErrInvalidProfile, err)
}

func (s *EligibilityResolverSuite) TestResolve_RankNotValidated() {
	// Rank bounds belong to the HTTP layer; the resolver accepts any rank
	// and still produces a non-empty pattern set.
	filter, err := s.resolver.Resolve(models.StudentProfile{Rank: 0, Caste: "OPEN", Gender: "MALE", SeatType: "S"})
	s.NoError(err)
	s.Equal([]string{"GOPENS"}, filter.CategoryPatterns)

	filter, err = s.resolver.Resolve(models.StudentProfile{Rank: -10, Caste: "SC", SeatType: "H"})
	s.NoError(err)
	s.Equal([]string{"LSCH"}, filter.CategoryPatterns)
}
