package services

import (
	"regexp"
	"sort"
	"strings"

	"cap-recommender/internal/models"
)

var (
	branchPunctRegex  = regexp.MustCompile(`[&(),.-]`)
	branchSpacesRegex = regexp.MustCompile(`\s+`)
)

// BranchNormalizer folds the many spellings of a branch name in cutoff
// reports onto canonical codes. Unknown branches pass through trimmed so
// that no cutoff record is ever dropped by normalization.
type BranchNormalizer struct {
	exact map[string]string
	fuzzy map[string]string
	codes []string
}

// NewBranchNormalizer builds the lookup indexes from the variant table
func NewBranchNormalizer() BranchNormalizerInterface {
	n := &BranchNormalizer{
		exact: make(map[string]string),
		fuzzy: make(map[string]string),
	}

	for code, variants := range branchVariants {
		n.codes = append(n.codes, code)
		for _, variant := range variants {
			lower := strings.ToLower(variant)
			n.exact[lower] = code
			n.fuzzy[foldBranchName(lower)] = code
		}
	}
	sort.Strings(n.codes)

	return n
}

// foldBranchName strips punctuation and collapses whitespace so spellings
// that differ only in commas, ampersands or spacing compare equal
func foldBranchName(lower string) string {
	clean := branchPunctRegex.ReplaceAllString(lower, " ")
	clean = branchSpacesRegex.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// Normalize returns the canonical code for a branch name, or the trimmed
// original when no mapping exists
func (n *BranchNormalizer) Normalize(branch string) string {
	if branch == "" {
		return branch
	}

	lower := strings.ToLower(strings.TrimSpace(branch))
	if code, ok := n.exact[lower]; ok {
		return code
	}
	if code, ok := n.fuzzy[foldBranchName(lower)]; ok {
		return code
	}

	return strings.TrimSpace(branch)
}

// NormalizeAll returns the sorted set of distinct canonical names for the
// given branches, blank entries skipped
func (n *BranchNormalizer) NormalizeAll(branches []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, branch := range branches {
		if strings.TrimSpace(branch) == "" {
			continue
		}
		normalized := n.Normalize(branch)
		if !seen[normalized] {
			seen[normalized] = true
			result = append(result, normalized)
		}
	}

	sort.Strings(result)
	return result
}

// MapWithOriginals pairs each distinct canonical name with the first
// original spelling that produced it, sorted by canonical name
func (n *BranchNormalizer) MapWithOriginals(branches []string) []models.BranchMapping {
	seen := make(map[string]bool)
	var result []models.BranchMapping

	for _, branch := range branches {
		if strings.TrimSpace(branch) == "" {
			continue
		}
		normalized := n.Normalize(branch)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, models.BranchMapping{
			Original:  branch,
			Canonical: normalized,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Canonical < result[j].Canonical
	})
	return result
}

// ExpandForSearch returns the substrings to match against the branch column
// for a search term: the term itself plus the full names behind any known
// shorthand
func (n *BranchNormalizer) ExpandForSearch(branch string) []string {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil
	}

	patterns := []string{branch}
	if expansions, ok := searchExpansions[strings.ToUpper(branch)]; ok {
		patterns = append(patterns, expansions...)
	}

	return patterns
}

// CanonicalCodes returns every canonical branch code, sorted
func (n *BranchNormalizer) CanonicalCodes() []string {
	codes := make([]string, len(n.codes))
	copy(codes, n.codes)
	return codes
}
