package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestBranchNormalizer(t *testing.T) {
	suite.Run(t, new(BranchNormalizerSuite))
}

type BranchNormalizerSuite struct {
	suite.Suite
	normalizer BranchNormalizerInterface
}

func (s *BranchNormalizerSuite) SetupTest() {
	s.normalizer = NewBranchNormalizer()
}

func (s *BranchNormalizerSuite) TestNormalize_ExactVariants() {
	tests := []struct {
		input string
		want  string
	}{
		{"Computer Science and Engineering", "CSE"},
		{"Computer Engineering", "CSE"},
		{"Computer Science and Business Systems", "CSE"},
		{"Information Technology", "IT"},
		{"Electronics and Telecommunication Engineering", "ECE"},
		{"Electronics and Telecommunication", "ETC"},
		{"Electrical Engineering", "EEE"},
		{"Mechanical Engineering", "ME"},
		{"Civil Engineering", "CE"},
		{"Chemical Technology", "CHE"},
		{"Bio-Technology", "BT"},
		{"Biomedical Engineering", "BME"},
		{"Automobile Engineering", "AE"},
		{"Aerospace Engineering", "AERO"},
		{"Agriculture Engineering", "AGE"},
		{"Artificial Intelligence and Data Science", "AIDS"},
		{"AI and Machine Learning", "AIML"},
		{"Data Science and Engineering", "DS"},
		{"Artificial Intelligence", "AI"},
		{"Robotics and Automation", "AR"},
		{"Architectural Assistantship", "ARCH"},
		{"5G Technology", "5G"},
	}

	for _, tt := range tests {
		s.Equal(tt.want, s.normalizer.Normalize(tt.input), "input %q", tt.input)
	}
}

func (s *BranchNormalizerSuite) TestNormalize_CaseAndWhitespace() {
	s.Equal("CSE", s.normalizer.Normalize("computer science AND engineering"))
	s.Equal("IT", s.normalizer.Normalize("  Information Technology  "))
}

func (s *BranchNormalizerSuite) TestNormalize_FuzzyPunctuation() {
	// Same words, different punctuation and spacing
	s.Equal("CSE", s.normalizer.Normalize("Computer Science & Engineering (Cyber Security)"))
	s.Equal("CSE", s.normalizer.Normalize("Computer Science and Engineering  (Data Science)"))
	s.Equal("BT", s.normalizer.Normalize("Bio - Technology"))
}

func (s *BranchNormalizerSuite) TestNormalize_UnknownPassesThrough() {
	s.Equal("Textile Engineering", s.normalizer.Normalize("  Textile Engineering "))
	s.Equal("", s.normalizer.Normalize(""))
}

func (s *BranchNormalizerSuite) TestNormalizeAll() {
	branches := []string{
		"Computer Science and Engineering",
		"Computer Engineering",
		"Information Technology",
		"  ",
		"Textile Engineering",
	}

	// Variants collapse, unknowns survive, output sorted
	s.Equal([]string{"CSE", "IT", "Textile Engineering"}, s.normalizer.NormalizeAll(branches))
}

func (s *BranchNormalizerSuite) TestMapWithOriginals() {
	branches := []string{
		"Information Technology",
		"Computer Science and Engineering",
		"Computer Engineering",
	}

	mappings := s.normalizer.MapWithOriginals(branches)
	s.Require().Len(mappings, 2)

	// Sorted by canonical code, first spelling wins
	s.Equal("CSE", mappings[0].Canonical)
	s.Equal("Computer Science and Engineering", mappings[0].Original)
	s.Equal("IT", mappings[1].Canonical)
}

func (s *BranchNormalizerSuite) TestExpandForSearch() {
	patterns := s.normalizer.ExpandForSearch("cs")
	s.Equal([]string{"cs", "Computer Science", "Computer Science and Engineering"}, patterns)

	patterns = s.normalizer.ExpandForSearch("Mechatronics")
	s.Equal([]string{"Mechatronics"}, patterns)

	s.Nil(s.normalizer.ExpandForSearch("   "))
}

func (s *BranchNormalizerSuite) TestCanonicalCodes() {
	codes := s.normalizer.CanonicalCodes()
	s.Len(codes, 20)
	s.Contains(codes, "CSE")
	s.Contains(codes, "5G")
}
