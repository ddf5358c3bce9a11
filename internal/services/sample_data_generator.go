package services

import (
	"fmt"
	"math/rand"
	"time"

	"cap-recommender/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type sampleDataGenerator struct {
	collegePool  []sampleCollege
	branchPool   []sampleBranch
	categoryPool []string
	rng          *rand.Rand
	faker        *gofakeit.Faker
}

type sampleCollege struct {
	Code   int
	Name   string
	Status string
	Region string
}

type sampleBranch struct {
	Name       string
	CourseCode int64
}

const (
	sampleMinRank  = 100
	sampleMaxRank  = 150000
	sampleTopScore = 99.99
)

// NewSampleDataGenerator creates a generator for development seed data
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		collegePool:  initializeCollegePool(),
		branchPool:   initializeBranchPool(),
		categoryPool: initializeCategoryPool(),
		rng:          rand.New(source),
		faker:        gofakeit.New(0),
	}
}

// initializeCollegePool returns a pool of colleges matching the naming of
// real CAP cutoff reports.
func initializeCollegePool() []sampleCollege {
	return []sampleCollege{
		{6006, "College of Engineering, Pune", models.CollegeStatusGovernment, "Pune"},
		{3012, "Veermata Jijabai Technological Institute, Mumbai", models.CollegeStatusGovernment, "Mumbai"},
		{3014, "Sardar Patel College of Engineering, Mumbai", models.CollegeStatusAided, "Mumbai"},
		{4025, "Government College of Engineering, Nagpur", models.CollegeStatusGovernment, "Nagpur"},
		{2008, "Government College of Engineering, Aurangabad", models.CollegeStatusGovernment, "Aurangabad"},
		{5004, "Government College of Engineering, Amravati", models.CollegeStatusGovernment, "Amravati"},
		{6145, "Pune Institute of Computer Technology, Pune", models.CollegeStatusPrivate, "Pune"},
		{6272, "Vishwakarma Institute of Technology, Pune", models.CollegeStatusPrivate, "Pune"},
		{3151, "Thadomal Shahani Engineering College, Mumbai", models.CollegeStatusPrivate, "Mumbai"},
		{3175, "K. J. Somaiya College of Engineering, Mumbai", models.CollegeStatusPrivate, "Mumbai"},
		{6178, "D. Y. Patil College of Engineering, Pune", models.CollegeStatusPrivate, "Pune"},
		{4115, "Yeshwantrao Chavan College of Engineering, Nagpur", models.CollegeStatusPrivate, "Nagpur"},
		{1002, "Government College of Engineering, Karad", models.CollegeStatusGovernment, "Satara"},
		{2111, "Jawaharlal Nehru Engineering College, Aurangabad", models.CollegeStatusPrivate, "Aurangabad"},
		{6284, "MIT Academy of Engineering, Pune", models.CollegeStatusPrivate, "Pune"},
		{3202, "Fr. Conceicao Rodrigues College of Engineering, Mumbai", models.CollegeStatusPrivate, "Mumbai"},
		{6622, "Walchand College of Engineering, Sangli", models.CollegeStatusAided, "Sangli"},
		{5125, "Shri Sant Gajanan Maharaj College of Engineering, Shegaon", models.CollegeStatusAided, "Buldhana"},
	}
}

// initializeBranchPool returns branch spellings as they appear in the
// reports, including the variants the normalizer collapses.
func initializeBranchPool() []sampleBranch {
	return []sampleBranch{
		{"Computer Engineering", 24510},
		{"Computer Science and Engineering", 24511},
		{"Information Technology", 24610},
		{"Electronics and Telecommunication Engg", 37210},
		{"Electrical Engineering", 29310},
		{"Mechanical Engineering", 61210},
		{"Civil Engineering", 19110},
		{"Chemical Engineering", 50310},
		{"Instrumentation Engineering", 46110},
		{"Production Engineering", 72110},
		{"Artificial Intelligence and Data Science", 26310},
	}
}

// initializeCategoryPool returns seat category codes in report form.
func initializeCategoryPool() []string {
	return []string{
		"GOPENS", "GOPENH", "GOPENO",
		"GOBCS", "GOBCH",
		"GSCS", "GSCH",
		"GSTS",
		"GVJS", "GNT1S", "GNT2S",
		"LOPENS", "LOPENH",
		"LOBCS",
		"GSEBCS", "GSEBCH",
		"TFWS",
		"EWS",
		"PWDOPENS",
		"DEFOPENS",
	}
}

// GenerateColleges returns up to count distinct colleges from the pool.
func (g *sampleDataGenerator) GenerateColleges(count int) []*models.College {
	if count <= 0 || count > len(g.collegePool) {
		count = len(g.collegePool)
	}

	order := g.rng.Perm(len(g.collegePool))
	colleges := make([]*models.College, 0, count)
	for _, idx := range order[:count] {
		tmpl := g.collegePool[idx]
		colleges = append(colleges, &models.College{
			Code:   tmpl.Code,
			Name:   tmpl.Name,
			Status: tmpl.Status,
			Region: tmpl.Region,
		})
	}
	return colleges
}

// GenerateCutoffs produces cutoff records for one college and year. Each
// college offers a random subset of branches, each with several categories.
func (g *sampleDataGenerator) GenerateCutoffs(college *models.College, year int) []models.Cutoff {
	branchCount := 3 + g.rng.Intn(len(g.branchPool)-3)
	branchOrder := g.rng.Perm(len(g.branchPool))

	cutoffs := make([]models.Cutoff, 0, branchCount*6)
	for _, idx := range branchOrder[:branchCount] {
		branch := g.branchPool[idx]
		baseRank := g.generateBaseRank(college.Status)

		categoryCount := 4 + g.rng.Intn(6)
		categoryOrder := g.rng.Perm(len(g.categoryPool))
		for _, cidx := range categoryOrder[:categoryCount] {
			category := g.categoryPool[cidx]
			rank := g.adjustRankForCategory(baseRank, category)

			cutoffs = append(cutoffs, models.Cutoff{
				CollegeID:   college.ID,
				CollegeCode: college.Code,
				Branch:      branch.Name,
				CourseCode:  branch.CourseCode*10000 + int64(college.Code),
				Category:    category,
				Rank:        &rank,
				Percentile:  g.percentileForRank(rank),
				Level:       "state level",
				Year:        year,
				Stage:       fmt.Sprintf("CAP Round %d", 1+g.rng.Intn(3)),
			})
		}
	}
	return cutoffs
}

// GenerateDemoUsers returns users with fake names, emails and phone numbers
// for exercising the admin endpoints locally. Password hashes are left empty.
func (g *sampleDataGenerator) GenerateDemoUsers(count int) []*models.User {
	if count <= 0 {
		count = 5
	}

	users := make([]*models.User, 0, count)
	seen := map[string]bool{}
	for len(users) < count {
		email := g.faker.Email()
		if seen[email] {
			continue
		}
		seen[email] = true

		users = append(users, &models.User{
			Email:      email,
			FullName:   g.faker.Name(),
			Phone:      g.faker.Phone(),
			IsActive:   true,
			IsVerified: true,
		})
	}
	return users
}

// generateBaseRank picks a closing-rank band by college status. Government
// colleges close earlier than private ones.
func (g *sampleDataGenerator) generateBaseRank(status string) int {
	switch status {
	case models.CollegeStatusGovernment:
		return sampleMinRank + g.rng.Intn(15000)
	case models.CollegeStatusAided:
		return 5000 + g.rng.Intn(30000)
	default:
		return 15000 + g.rng.Intn(sampleMaxRank-15000)
	}
}

// adjustRankForCategory widens the closing rank for reserved categories,
// mirroring how real cutoffs behave relative to the open seat.
func (g *sampleDataGenerator) adjustRankForCategory(baseRank int, category string) int {
	multiplier := 1.0
	switch {
	case category == "TFWS":
		multiplier = 0.6
	case category[0] == 'L':
		multiplier = 1.1
	case category == "EWS" || category == "GSEBCS" || category == "GSEBCH":
		multiplier = 1.3
	case category == "GOBCS" || category == "GOBCH":
		multiplier = 1.5
	case category[0] == 'P' || category[0] == 'D':
		multiplier = 2.5
	case category != "GOPENS" && category != "GOPENH" && category != "GOPENO":
		multiplier = 2.0
	}

	rank := int(float64(baseRank) * multiplier * (0.9 + g.rng.Float64()*0.2))
	if rank < sampleMinRank {
		rank = sampleMinRank
	}
	if rank > sampleMaxRank {
		rank = sampleMaxRank
	}
	return rank
}

// percentileForRank derives a plausible percentile from a rank, decreasing
// monotonically over the rank range.
func (g *sampleDataGenerator) percentileForRank(rank int) decimal.Decimal {
	fraction := float64(rank) / float64(sampleMaxRank)
	percentile := sampleTopScore - fraction*25.0
	if percentile < 50 {
		percentile = 50
	}
	return decimal.NewFromFloat(percentile).Round(2)
}
