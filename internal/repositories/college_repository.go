package repositories

import (
	"errors"
	"fmt"

	"cap-recommender/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCollegeNotFound = errors.New("college not found")
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *gorm.DB) CollegeRepositoryInterface {
	return &CollegeRepository{
		db: db,
	}
}

// Create creates a new college in the database
func (r *CollegeRepository) Create(college *models.College) error {
	if college == nil {
		return errors.New("college cannot be nil")
	}

	if err := r.db.Create(college).Error; err != nil {
		return fmt.Errorf("failed to create college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by its ID
func (r *CollegeRepository) GetByID(id uuid.UUID) (*models.College, error) {
	var college models.College
	if err := r.db.Where("id = ?", id).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to get college by ID: %w", err)
	}

	return &college, nil
}

// GetByCode retrieves a college by its DTE code
func (r *CollegeRepository) GetByCode(code int) (*models.College, error) {
	var college models.College
	if err := r.db.Where("code = ?", code).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to get college by code: %w", err)
	}

	return &college, nil
}

// FindOrCreate returns the existing college with the same code, name and
// status, creating it if absent. Used by the ingestion loader, which sees the
// same college header repeated across report pages.
func (r *CollegeRepository) FindOrCreate(college *models.College) (*models.College, error) {
	if college == nil {
		return nil, errors.New("college cannot be nil")
	}

	var existing models.College
	err := r.db.Where("code = ? AND name = ? AND status = ?",
		college.Code, college.Name, college.Status).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up college: %w", err)
	}

	if err := r.db.Create(college).Error; err != nil {
		return nil, fmt.Errorf("failed to create college: %w", err)
	}

	return college, nil
}

// SearchByName searches colleges by a case-insensitive name fragment
func (r *CollegeRepository) SearchByName(name string, offset, limit int) ([]*models.College, int64, error) {
	var colleges []*models.College
	var total int64

	query := r.db.Model(&models.College{}).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&colleges).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search colleges: %w", err)
	}

	return colleges, total, nil
}

// List retrieves colleges with pagination
func (r *CollegeRepository) List(offset, limit int) ([]*models.College, int64, error) {
	var colleges []*models.College
	var total int64

	if err := r.db.Model(&models.College{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	if err := r.db.Order("code ASC").Offset(offset).Limit(limit).Find(&colleges).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list colleges: %w", err)
	}

	return colleges, total, nil
}

// ListRegions returns the distinct non-empty regions colleges are assigned to
func (r *CollegeRepository) ListRegions() ([]string, error) {
	var regions []string
	err := r.db.Model(&models.College{}).
		Distinct("region").
		Where("region <> ''").
		Order("region").
		Pluck("region", &regions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return regions, nil
}

// UpdateRegion sets the region for every college with the given code
func (r *CollegeRepository) UpdateRegion(code int, region string) error {
	result := r.db.Model(&models.College{}).
		Where("code = ?", code).
		Update("region", region)
	if result.Error != nil {
		return fmt.Errorf("failed to update region: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCollegeNotFound
	}

	return nil
}

// Count returns the number of colleges
func (r *CollegeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.College{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	return count, nil
}

// DeleteAll removes every college. Used before a full re-ingestion.
func (r *CollegeRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM colleges").Error; err != nil {
		return fmt.Errorf("failed to delete colleges: %w", err)
	}

	return nil
}
