package repositories

import (
	"errors"
	"fmt"
	"strings"

	"cap-recommender/internal/models"

	"gorm.io/gorm"
)

const ingestBatchSize = 500

// CutoffRepository handles database operations for cutoff records
type CutoffRepository struct {
	db *gorm.DB
}

// NewCutoffRepository creates a new cutoff repository
func NewCutoffRepository(db *gorm.DB) CutoffRepositoryInterface {
	return &CutoffRepository{
		db: db,
	}
}

// Create creates a single cutoff record
func (r *CutoffRepository) Create(cutoff *models.Cutoff) error {
	if cutoff == nil {
		return errors.New("cutoff cannot be nil")
	}

	if err := r.db.Create(cutoff).Error; err != nil {
		return fmt.Errorf("failed to create cutoff: %w", err)
	}

	return nil
}

// CreateBatch inserts cutoff records in batches
func (r *CutoffRepository) CreateBatch(cutoffs []models.Cutoff) error {
	if len(cutoffs) == 0 {
		return nil
	}

	if err := r.db.CreateInBatches(cutoffs, ingestBatchSize).Error; err != nil {
		return fmt.Errorf("failed to batch-insert cutoffs: %w", err)
	}

	return nil
}

// eligibleQuery builds the base query for cutoff records a student with the
// given rank can get into: the record's closing rank must be at or beyond the
// student's rank, the record's category must contain one of the resolved
// patterns, and the admission level must contain the required level fragment.
func (r *CutoffRepository) eligibleQuery(rank int, filter models.EligibilityFilter, year int) *gorm.DB {
	query := r.db.Model(&models.Cutoff{}).
		Where("rank IS NOT NULL").
		Where("rank >= ?", rank)

	if len(filter.CategoryPatterns) > 0 {
		patterns := r.db
		for i, p := range filter.CategoryPatterns {
			if i == 0 {
				patterns = patterns.Where("category LIKE ?", "%"+p+"%")
			} else {
				patterns = patterns.Or("category LIKE ?", "%"+p+"%")
			}
		}
		query = query.Where(patterns)
	}

	// Plain substring match; levels are stored lowercase at ingestion so the
	// lowercase filter fragments always line up.
	if filter.Level != "" {
		query = query.Where("level LIKE ?", "%"+filter.Level+"%")
	}

	if year > 0 {
		query = query.Where("year = ?", year)
	}

	return query
}

// FindEligible returns eligible cutoff records ordered by closing rank, best
// colleges first
func (r *CutoffRepository) FindEligible(rank int, filter models.EligibilityFilter, year, limit int) ([]models.Cutoff, error) {
	var cutoffs []models.Cutoff

	query := r.eligibleQuery(rank, filter, year).
		Preload("College").
		Order("rank ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&cutoffs).Error; err != nil {
		return nil, fmt.Errorf("failed to find eligible cutoffs: %w", err)
	}

	return cutoffs, nil
}

// FindEligibleForBranches restricts the eligible set to records whose branch
// contains one of the given terms, case-insensitively. Terms are the raw
// search input plus the variant spellings behind a canonical code, so "Civil"
// matches "Civil Engineering" and "MECH" the mechanical variants.
func (r *CutoffRepository) FindEligibleForBranches(rank int, filter models.EligibilityFilter, branches []string, year, limit int) ([]models.Cutoff, error) {
	var cutoffs []models.Cutoff

	query := r.eligibleQuery(rank, filter, year).
		Preload("College").
		Order("rank ASC")

	if len(branches) > 0 {
		match := r.db
		for i, b := range branches {
			pattern := "%" + strings.ToLower(b) + "%"
			if i == 0 {
				match = match.Where("LOWER(branch) LIKE ?", pattern)
			} else {
				match = match.Or("LOWER(branch) LIKE ?", pattern)
			}
		}
		query = query.Where(match)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&cutoffs).Error; err != nil {
		return nil, fmt.Errorf("failed to find eligible cutoffs for branches: %w", err)
	}

	return cutoffs, nil
}

// GetByCollegeCode returns every cutoff record for a college, optionally
// restricted to one admission year
func (r *CutoffRepository) GetByCollegeCode(code int, year int) ([]models.Cutoff, error) {
	var cutoffs []models.Cutoff

	query := r.db.Preload("College").Where("college_code = ?", code)
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	if err := query.Order("branch ASC, category ASC").Find(&cutoffs).Error; err != nil {
		return nil, fmt.Errorf("failed to get cutoffs for college: %w", err)
	}

	return cutoffs, nil
}

// ListWithColleges streams every cutoff row with its college attached,
// optionally restricted to one year. Used by the ranking rebuild.
func (r *CutoffRepository) ListWithColleges(year int) ([]models.Cutoff, error) {
	var cutoffs []models.Cutoff

	query := r.db.Preload("College").Where("rank IS NOT NULL")
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	if err := query.Find(&cutoffs).Error; err != nil {
		return nil, fmt.Errorf("failed to list cutoffs: %w", err)
	}

	return cutoffs, nil
}

// DistinctBranches returns every stored branch spelling
func (r *CutoffRepository) DistinctBranches() ([]string, error) {
	var branches []string
	err := r.db.Model(&models.Cutoff{}).
		Distinct("branch").
		Where("branch <> ''").
		Order("branch").
		Pluck("branch", &branches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return branches, nil
}

// DistinctCategories returns every stored category code
func (r *CutoffRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Cutoff{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// DistinctYears returns the admission years present in the store
func (r *CutoffRepository) DistinctYears() ([]int, error) {
	var years []int
	err := r.db.Model(&models.Cutoff{}).
		Distinct("year").
		Where("year > 0").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	return years, nil
}

// Count returns the number of cutoff records
func (r *CutoffRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Cutoff{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cutoffs: %w", err)
	}

	return count, nil
}

// DeleteByYear removes all cutoff records for one admission year
func (r *CutoffRepository) DeleteByYear(year int) (int64, error) {
	result := r.db.Where("year = ?", year).Delete(&models.Cutoff{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete cutoffs for year: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteAll removes every cutoff record. Used before a full re-ingestion.
func (r *CutoffRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM cutoffs").Error; err != nil {
		return fmt.Errorf("failed to delete cutoffs: %w", err)
	}

	return nil
}
