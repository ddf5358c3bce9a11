package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cap-recommender/internal/config"
	"cap-recommender/internal/dto"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"
)

var ErrNoEligibleColleges = errors.New("no colleges match the given profile")

// statisticsSampleSize bounds the match set the statistics summary is
// computed over.
const statisticsSampleSize = 1000

// SuggestionService answers college recommendation queries by resolving the
// student profile into category patterns and matching them against cutoffs
type SuggestionService struct {
	cutoffRepo  repositories.CutoffRepositoryInterface
	collegeRepo repositories.CollegeRepositoryInterface
	rankedRepo  repositories.RankedCollegeRepositoryInterface
	resolver    EligibilityResolverInterface
	normalizer  BranchNormalizerInterface
	suggestLog  SuggestionLoggerInterface
	metrics     MetricsRecorderInterface
	cfg         config.SuggestionConfig
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(
	cutoffRepo repositories.CutoffRepositoryInterface,
	collegeRepo repositories.CollegeRepositoryInterface,
	rankedRepo repositories.RankedCollegeRepositoryInterface,
	resolver EligibilityResolverInterface,
	normalizer BranchNormalizerInterface,
	suggestLog SuggestionLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.SuggestionConfig,
) SuggestionServiceInterface {
	return &SuggestionService{
		cutoffRepo:  cutoffRepo,
		collegeRepo: collegeRepo,
		rankedRepo:  rankedRepo,
		resolver:    resolver,
		normalizer:  normalizer,
		suggestLog:  suggestLog,
		metrics:     metrics,
		cfg:         cfg,
	}
}

// SuggestColleges returns eligible seats for the profile, best colleges first
func (s *SuggestionService) SuggestColleges(ctx context.Context, profile models.StudentProfile, year, limit int) ([]dto.CollegeSuggestion, error) {
	start := time.Now()
	s.suggestLog.LogSuggestionStarted(ctx, profile.Rank, profile.SeatType, profile.SpecialReservation)

	filter, err := s.resolver.Resolve(profile)
	if err != nil {
		s.suggestLog.LogSuggestionFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		return nil, err
	}

	cutoffs, err := s.cutoffRepo.FindEligible(profile.Rank, filter, s.effectiveYear(year), s.clampLimit(limit, s.cfg.DefaultLimit))
	if err != nil {
		s.suggestLog.LogSuggestionFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		return nil, fmt.Errorf("failed to find eligible colleges: %w", err)
	}

	suggestions := s.toSuggestions(cutoffs)
	s.suggestLog.LogSuggestionCompleted(ctx, len(suggestions), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("suggestion_queries", map[string]string{"operation": "suggest", "status": "success"})
	s.metrics.RecordProcessingTime("suggestion_query", time.Since(start))

	return suggestions, nil
}

// CollegeDetails returns eligible seats narrowed by college name and branch.
// The branch term matches by containment against both the raw term and the
// full names behind known shorthand like CS or ENTC.
func (s *SuggestionService) CollegeDetails(ctx context.Context, profile models.StudentProfile, collegeName, branch string, year, limit int) ([]dto.CollegeSuggestion, error) {
	start := time.Now()
	s.suggestLog.LogSuggestionStarted(ctx, profile.Rank, profile.SeatType, profile.SpecialReservation)

	filter, err := s.resolver.Resolve(profile)
	if err != nil {
		s.suggestLog.LogSuggestionFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		return nil, err
	}

	branchPatterns := s.normalizer.ExpandForSearch(branch)

	// A college name filter is applied after the query, so fetch unlimited
	// and truncate afterwards
	effectiveLimit := s.clampLimit(limit, s.cfg.DetailsLimit)
	queryLimit := effectiveLimit
	if collegeName != "" {
		queryLimit = 0
	}

	cutoffs, err := s.cutoffRepo.FindEligibleForBranches(profile.Rank, filter, branchPatterns, s.effectiveYear(year), queryLimit)
	if err != nil {
		s.suggestLog.LogSuggestionFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		return nil, fmt.Errorf("failed to find college details: %w", err)
	}

	suggestions := s.toSuggestions(cutoffs)
	if collegeName != "" {
		suggestions = filterByCollegeName(suggestions, collegeName)
		if effectiveLimit > 0 && len(suggestions) > effectiveLimit {
			suggestions = suggestions[:effectiveLimit]
		}
	}

	s.suggestLog.LogSuggestionCompleted(ctx, len(suggestions), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("suggestion_queries", map[string]string{"operation": "details", "status": "success"})

	return suggestions, nil
}

// Statistics summarizes the match set for a profile, computed over the first
// thousand matches by closing rank
func (s *SuggestionService) Statistics(ctx context.Context, profile models.StudentProfile, year int) (*models.SuggestionStatistics, error) {
	filter, err := s.resolver.Resolve(profile)
	if err != nil {
		return nil, err
	}

	cutoffs, err := s.cutoffRepo.FindEligible(profile.Rank, filter, s.effectiveYear(year), statisticsSampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	stats := &models.SuggestionStatistics{TotalMatches: len(cutoffs)}
	colleges := make(map[int]bool)
	branches := make(map[string]bool)
	levels := make(map[string]bool)
	categories := make(map[string]bool)

	for _, c := range cutoffs {
		colleges[c.CollegeCode] = true
		branches[s.normalizer.Normalize(c.Branch)] = true
		if c.Level != "" && !levels[c.Level] {
			levels[c.Level] = true
			stats.Levels = append(stats.Levels, c.Level)
		}
		if c.Category != "" && !categories[c.Category] {
			categories[c.Category] = true
			stats.Categories = append(stats.Categories, c.Category)
		}
		if c.Rank != nil {
			if stats.MinRank == 0 || *c.Rank < stats.MinRank {
				stats.MinRank = *c.Rank
			}
			if *c.Rank > stats.MaxRank {
				stats.MaxRank = *c.Rank
			}
		}
	}

	stats.UniqueColleges = len(colleges)
	stats.UniqueBranches = len(branches)

	return stats, nil
}

// AvailableBranches returns the distinct canonical branch names in the dataset
func (s *SuggestionService) AvailableBranches(ctx context.Context) ([]string, error) {
	branches, err := s.cutoffRepo.DistinctBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return s.normalizer.NormalizeAll(branches), nil
}

// BranchMappings reports how raw branch spellings map onto canonical names
func (s *SuggestionService) BranchMappings(ctx context.Context) (*models.BranchMappingReport, error) {
	branches, err := s.cutoffRepo.DistinctBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	mappings := s.normalizer.MapWithOriginals(branches)

	return &models.BranchMappingReport{
		TotalOriginalBranches:   len(branches),
		TotalNormalizedBranches: len(mappings),
		Mappings:                mappings,
	}, nil
}

// AvailableRegions returns the distinct college regions
func (s *SuggestionService) AvailableRegions(ctx context.Context) ([]string, error) {
	regions, err := s.collegeRepo.ListRegions()
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return regions, nil
}

// TopCollegesForBranch returns the precomputed ranking rows for a canonical
// branch code, best cutoff ranks first
func (s *SuggestionService) TopCollegesForBranch(ctx context.Context, branchCode string, maxRank, limit int) ([]models.RankedCollege, error) {
	code := s.normalizer.Normalize(branchCode)

	entries, err := s.rankedRepo.GetByBranchCode(code, maxRank, s.clampLimit(limit, s.cfg.DefaultLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to get top colleges: %w", err)
	}

	return entries, nil
}

func filterByCollegeName(suggestions []dto.CollegeSuggestion, name string) []dto.CollegeSuggestion {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return suggestions
	}

	filtered := suggestions[:0]
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s.CollegeName), needle) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (s *SuggestionService) toSuggestions(cutoffs []models.Cutoff) []dto.CollegeSuggestion {
	suggestions := make([]dto.CollegeSuggestion, 0, len(cutoffs))
	for _, c := range cutoffs {
		rank := 0
		if c.Rank != nil {
			rank = *c.Rank
		}
		suggestions = append(suggestions, dto.CollegeSuggestion{
			CollegeCode:      c.CollegeCode,
			CollegeName:      c.College.Name,
			CollegeStatus:    c.College.Status,
			Region:           c.College.Region,
			Branch:           c.Branch,
			NormalizedBranch: s.normalizer.Normalize(c.Branch),
			Category:         c.Category,
			Rank:             rank,
			Percentile:       c.Percentile,
			Level:            c.Level,
			Year:             c.Year,
		})
	}
	return suggestions
}

func (s *SuggestionService) effectiveYear(year int) int {
	if year > 0 {
		return year
	}
	return s.cfg.DefaultYear
}

func (s *SuggestionService) clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}
