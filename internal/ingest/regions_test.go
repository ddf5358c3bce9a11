package ingest

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestRegions(t *testing.T) {
	suite.Run(t, new(RegionsSuite))
}

type RegionsSuite struct {
	suite.Suite
}

func (s *RegionsSuite) TestRegionFromCollegeName() {
	cases := []struct {
		name     string
		expected string
	}{
		{"Government College of Engineering, Amravati", "Amravati"},
		{"Veermata Jijabai Technological Institute, Mumbai", "Mumbai"},
		{"K. J. Somaiya College of Engineering, Mumbai.", "Mumbai"},
		{"Pillai College of Engineering, Dist-Raigad", "Raigad"},
		{"Government College of Engineering, Tal-Khed", "Khed"},
		{"College of Engineering, District Satara", "Satara"},
		{"Walchand College of Engineering", ""},
		{"Some Institute,", ""},
		{"Odd Institute, 123", ""},
	}

	for _, tc := range cases {
		s.Equalf(tc.expected, RegionFromCollegeName(tc.name), "name: %s", tc.name)
	}
}
