package repositories

import (
	"fmt"

	"cap-recommender/internal/models"

	"gorm.io/gorm"
)

// RankedCollegeRepository handles the denormalized per-branch ranking table
type RankedCollegeRepository struct {
	db *gorm.DB
}

// NewRankedCollegeRepository creates a new ranked college repository
func NewRankedCollegeRepository(db *gorm.DB) RankedCollegeRepositoryInterface {
	return &RankedCollegeRepository{
		db: db,
	}
}

// Rebuild replaces the full ranking table in one transaction
func (r *RankedCollegeRepository) Rebuild(entries []models.RankedCollege) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM ranked_colleges").Error; err != nil {
			return fmt.Errorf("failed to clear ranked colleges: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(entries, ingestBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert ranked colleges: %w", err)
		}

		return nil
	})
}

// GetByBranchCode returns ranking rows for a canonical branch code, best
// cutoff ranks first
func (r *RankedCollegeRepository) GetByBranchCode(branchCode string, maxRank, limit int) ([]models.RankedCollege, error) {
	var entries []models.RankedCollege

	query := r.db.Where("branch_code = ?", branchCode)
	if maxRank > 0 {
		query = query.Where("cutoff_rank >= ?", maxRank)
	}

	query = query.Order("cutoff_rank ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ranked colleges: %w", err)
	}

	return entries, nil
}

// Count returns the number of ranking rows
func (r *RankedCollegeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.RankedCollege{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ranked colleges: %w", err)
	}

	return count, nil
}
