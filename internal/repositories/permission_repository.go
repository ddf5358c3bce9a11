package repositories

import (
	"errors"
	"fmt"

	"cap-recommender/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPermissionNotFound      = errors.New("permission not found")
	ErrPermissionAlreadyExists = errors.New("permission already exists")
)

// PermissionRepository handles database operations for permissions
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) PermissionRepositoryInterface {
	return &PermissionRepository{
		db: db,
	}
}

// Create creates a new permission in the database
func (r *PermissionRepository) Create(permission *models.Permission) error {
	if permission == nil {
		return errors.New("permission cannot be nil")
	}

	if err := r.db.Create(permission).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrPermissionAlreadyExists
		}
		return fmt.Errorf("failed to create permission: %w", err)
	}

	return nil
}

// GetByID retrieves a permission by its ID
func (r *PermissionRepository) GetByID(id uuid.UUID) (*models.Permission, error) {
	var perm models.Permission
	if err := r.db.Where("id = ?", id).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to get permission by ID: %w", err)
	}

	return &perm, nil
}

// GetByName retrieves a permission by its name
func (r *PermissionRepository) GetByName(name string) (*models.Permission, error) {
	var perm models.Permission
	if err := r.db.Where("name = ?", name).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to get permission by name: %w", err)
	}

	return &perm, nil
}

// List retrieves all permissions
func (r *PermissionRepository) List() ([]*models.Permission, error) {
	var perms []*models.Permission
	if err := r.db.Order("resource ASC, action ASC").Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return perms, nil
}

// Delete removes a permission
func (r *PermissionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Permission{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPermissionNotFound
	}

	return nil
}
