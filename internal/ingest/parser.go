package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cutoff report line shapes:
//
//	01002 - Government College of Engineering, Amravati     college
//	0100219110 - Civil Engineering                           course
//	Stage GOPENS GSCS GSTS                                   category header
//	I 34240 62739 91124                                      closing ranks
//	(78.53) (61.02) (44.87)                                  percentiles
var (
	collegeLineRe  = regexp.MustCompile(`^(\d{5}) - (.+)$`)
	courseLineRe   = regexp.MustCompile(`^(\d{10}) - (.+)$`)
	categoryLineRe = regexp.MustCompile(`^Stage\s+[A-Z0-9]+(?:\s+[A-Z0-9]+)*$`)
	rankLineRe     = regexp.MustCompile(`^I\s+(\d+(?:\s+\d+)*)$`)
	percentRe      = regexp.MustCompile(`\(([\d.]+)\)`)
)

// skipKeywords marks institutions outside the engineering admission process.
var skipKeywords = []string{"Polytechnic", "Diploma", "ITI", "MSBTE"}

// validKeywords must appear in a college line for it to be accepted.
var validKeywords = []string{"College", "Institute", "Engineering", "Technology"}

// headerPrefixes are page furniture emitted by the report generator.
var headerPrefixes = []string{"D Government", "i State Common", "r Cut Off List"}

// CollegeRecord is one college with the cutoff rows parsed under it.
type CollegeRecord struct {
	Code    int
	Name    string
	Cutoffs []CutoffRecord
}

// CutoffRecord is one parsed category cell of a report table.
type CutoffRecord struct {
	Branch     string
	CourseCode int64
	Category   string
	Rank       int
	Percentile decimal.Decimal
	Gender     string
	Level      string
	Stage      string
}

// Result is the outcome of parsing a full report.
type Result struct {
	Colleges []*CollegeRecord
	Records  int
	Skipped  int
}

// Parser classifies report lines and assembles cutoff records. Tables span
// line groups: a category header line names the columns, a rank line carries
// the closing ranks, and the following percentile line completes the block.
type Parser struct {
	current    *CollegeRecord
	branch     string
	courseCode int64
	categories []string
	ranks      []int
	stage      string
}

// NewParser creates a parser for one report
func NewParser() *Parser {
	return &Parser{stage: "Stage-I"}
}

// Parse processes the pages of a report in order and returns every college
// and cutoff row found. Lines that do not match any known shape are ignored.
func (p *Parser) Parse(pages []string) *Result {
	result := &Result{}

	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			p.processLine(strings.TrimSpace(line), result)
		}
	}

	return result
}

func (p *Parser) processLine(line string, result *Result) {
	if line == "" || isHeaderLine(line) {
		return
	}

	if m := collegeLineRe.FindStringSubmatch(line); m != nil {
		if !isAcceptedCollege(line) {
			p.current = nil
			return
		}
		code, _ := strconv.Atoi(m[1])
		p.current = p.findOrAddCollege(result, code, strings.TrimSpace(m[2]))
		return
	}

	if m := courseLineRe.FindStringSubmatch(line); m != nil {
		p.courseCode, _ = strconv.ParseInt(m[1], 10, 64)
		p.branch = strings.TrimSpace(m[2])
		return
	}

	if strings.Contains(line, "Stage-I") || strings.Contains(line, "Stage-II") {
		if strings.Contains(line, "Stage-II") {
			p.stage = "Stage-II"
		} else {
			p.stage = "Stage-I"
		}
		return
	}

	if categoryLineRe.MatchString(line) {
		p.categories = strings.Fields(line)[1:]
		return
	}

	if m := rankLineRe.FindStringSubmatch(line); m != nil {
		fields := strings.Fields(m[1])
		p.ranks = make([]int, 0, len(fields))
		for _, f := range fields {
			rank, _ := strconv.Atoi(f)
			p.ranks = append(p.ranks, rank)
		}
		return
	}

	percents := percentRe.FindAllStringSubmatch(line, -1)
	if len(percents) > 0 && len(p.ranks) > 0 && len(p.categories) > 0 {
		p.emitBlock(percents, result)
		p.ranks = nil
	}
}

// emitBlock pairs the pending category header with the pending rank line and
// the percentile line just seen, producing one record per category column.
func (p *Parser) emitBlock(percents [][]string, result *Result) {
	for i, category := range p.categories {
		if p.current == nil || p.branch == "" || i >= len(p.ranks) {
			result.Skipped++
			continue
		}

		percentile := decimal.Zero
		if i < len(percents) {
			if d, err := decimal.NewFromString(percents[i][1]); err == nil {
				percentile = d
			}
		}

		p.current.Cutoffs = append(p.current.Cutoffs, CutoffRecord{
			Branch:     p.branch,
			CourseCode: p.courseCode,
			Category:   category,
			Rank:       p.ranks[i],
			Percentile: percentile,
			Gender:     genderForCategory(category),
			Level:      levelForCategory(category),
			Stage:      p.stage,
		})
		result.Records++
	}
}

func (p *Parser) findOrAddCollege(result *Result, code int, name string) *CollegeRecord {
	for _, c := range result.Colleges {
		if c.Code == code && c.Name == name {
			return c
		}
	}

	college := &CollegeRecord{Code: code, Name: name}
	result.Colleges = append(result.Colleges, college)
	return college
}

func isHeaderLine(line string) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// isAcceptedCollege filters college lines to degree engineering institutions
func isAcceptedCollege(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range skipKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}
	for _, kw := range validKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// genderForCategory reads the gender letter out of a seat category code.
// Ladies seats carry an L (LOPENS, PWDRLOBCS); everything else is general.
func genderForCategory(category string) string {
	if strings.Contains(category, "L") {
		return "female"
	}
	return "male"
}

// levelForCategory reads the seat level letter out of a category code,
// checking state before other before home to mirror the report convention.
func levelForCategory(category string) string {
	switch {
	case strings.Contains(category, "S"):
		return "state"
	case strings.Contains(category, "O"):
		return "other"
	case strings.Contains(category, "H"):
		return "home"
	default:
		return "state"
	}
}
