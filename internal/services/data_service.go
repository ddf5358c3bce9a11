package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"

	"github.com/google/uuid"
)

// DataService exposes administrative operations over the cutoff dataset:
// inspection, clearing and rebuilding the per-branch ranking table
type DataService struct {
	collegeRepo  repositories.CollegeRepositoryInterface
	cutoffRepo   repositories.CutoffRepositoryInterface
	rankedRepo   repositories.RankedCollegeRepositoryInterface
	normalizer   BranchNormalizerInterface
	auditService AuditServiceInterface
	suggestLog   SuggestionLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewDataService creates a new data service
func NewDataService(
	collegeRepo repositories.CollegeRepositoryInterface,
	cutoffRepo repositories.CutoffRepositoryInterface,
	rankedRepo repositories.RankedCollegeRepositoryInterface,
	normalizer BranchNormalizerInterface,
	auditService AuditServiceInterface,
	suggestLog SuggestionLoggerInterface,
	metrics MetricsRecorderInterface,
) DataServiceInterface {
	return &DataService{
		collegeRepo:  collegeRepo,
		cutoffRepo:   cutoffRepo,
		rankedRepo:   rankedRepo,
		normalizer:   normalizer,
		auditService: auditService,
		suggestLog:   suggestLog,
		metrics:      metrics,
	}
}

// Overview summarizes the loaded dataset
func (s *DataService) Overview() (*dto.DataOverview, error) {
	colleges, err := s.collegeRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count colleges: %w", err)
	}

	cutoffs, err := s.cutoffRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count cutoffs: %w", err)
	}

	ranked, err := s.rankedRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count ranking rows: %w", err)
	}

	years, err := s.cutoffRepo.DistinctYears()
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	categories, err := s.cutoffRepo.DistinctCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	branches, err := s.cutoffRepo.DistinctBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	regions, err := s.collegeRepo.ListRegions()
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return &dto.DataOverview{
		Colleges:       colleges,
		Cutoffs:        cutoffs,
		RankedColleges: ranked,
		Years:          years,
		Categories:     len(categories),
		Branches:       len(branches),
		Regions:        regions,
	}, nil
}

// ClearYear removes every cutoff record of one admission year
func (s *DataService) ClearYear(performedBy uuid.UUID, year int) (int64, error) {
	deleted, err := s.cutoffRepo.DeleteByYear(year)
	if err != nil {
		return 0, fmt.Errorf("failed to clear year %d: %w", year, err)
	}

	// Audit failure does not undo the delete
	_ = s.auditService.LogDataCleared(performedBy, fmt.Sprintf("year:%d", year), deleted)

	return deleted, nil
}

// ClearAll drops the whole dataset: cutoffs, colleges and rankings
func (s *DataService) ClearAll(performedBy uuid.UUID) error {
	cutoffs, err := s.cutoffRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count cutoffs: %w", err)
	}

	if err := s.rankedRepo.Rebuild(nil); err != nil {
		return fmt.Errorf("failed to clear rankings: %w", err)
	}
	if err := s.cutoffRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear cutoffs: %w", err)
	}
	if err := s.collegeRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear colleges: %w", err)
	}

	_ = s.auditService.LogDataCleared(performedBy, "all", cutoffs)

	return nil
}

// RebuildRankings recomputes the per-branch ranking table from the cutoffs.
// For every college and canonical branch the best (lowest) closing rank
// wins; rows are then positioned per branch by that rank.
func (s *DataService) RebuildRankings(ctx context.Context) (int, error) {
	start := time.Now()

	cutoffs, err := s.cutoffRepo.ListWithColleges(0)
	if err != nil {
		return 0, fmt.Errorf("failed to load cutoffs: %w", err)
	}

	type key struct {
		collegeID uuid.UUID
		code      string
	}
	best := make(map[key]models.RankedCollege)

	for _, c := range cutoffs {
		if c.Rank == nil {
			continue
		}
		branchCode := s.normalizer.Normalize(c.Branch)
		k := key{collegeID: c.CollegeID, code: branchCode}

		entry, ok := best[k]
		if !ok || *c.Rank < entry.CutoffRank {
			best[k] = models.RankedCollege{
				CollegeID:     c.CollegeID,
				CollegeCode:   c.CollegeCode,
				CollegeName:   c.College.Name,
				CollegeStatus: c.College.Status,
				Branch:        c.Branch,
				BranchCode:    branchCode,
				CutoffRank:    *c.Rank,
				Year:          c.Year,
				Stage:         c.Stage,
			}
		}
	}

	entries := make([]models.RankedCollege, 0, len(best))
	for _, entry := range best {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].BranchCode != entries[j].BranchCode {
			return entries[i].BranchCode < entries[j].BranchCode
		}
		return entries[i].CutoffRank < entries[j].CutoffRank
	})

	position := 0
	lastBranch := ""
	for i := range entries {
		if entries[i].BranchCode != lastBranch {
			lastBranch = entries[i].BranchCode
			position = 0
		}
		position++
		entries[i].RankPosition = position
	}

	if err := s.rankedRepo.Rebuild(entries); err != nil {
		return 0, fmt.Errorf("failed to rebuild rankings: %w", err)
	}

	s.suggestLog.LogRankingsRebuilt(ctx, len(entries), time.Since(start).Milliseconds())
	s.metrics.RecordGauge("ranking_rows", float64(len(entries)), nil)

	return len(entries), nil
}
