package repositories

import (
	"errors"
	"fmt"

	"cap-recommender/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role already exists")
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) RoleRepositoryInterface {
	return &RoleRepository{
		db: db,
	}
}

// Create creates a new role in the database
func (r *RoleRepository) Create(role *models.Role) error {
	if role == nil {
		return errors.New("role cannot be nil")
	}

	if err := r.db.Create(role).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrRoleAlreadyExists
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	return nil
}

// GetByID retrieves a role by its ID with permissions preloaded
func (r *RoleRepository) GetByID(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := r.db.Preload("Permissions").Where("id = ?", id).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by ID: %w", err)
	}

	return &role, nil
}

// GetByName retrieves a role by its name with permissions preloaded
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return &role, nil
}

// List retrieves all roles with their permissions
func (r *RoleRepository) List() ([]*models.Role, error) {
	var roles []*models.Role
	if err := r.db.Preload("Permissions").Order("name ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

// Update updates a role in the database
func (r *RoleRepository) Update(role *models.Role) error {
	if role == nil {
		return errors.New("role cannot be nil")
	}

	if err := r.db.Save(role).Error; err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	return nil
}

// Delete removes a role
func (r *RoleRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Role{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotFound
	}

	return nil
}

// AssignPermission adds a permission to a role
func (r *RoleRepository) AssignPermission(roleID, permissionID uuid.UUID) error {
	role := models.Role{ID: roleID}
	perm := models.Permission{ID: permissionID}

	if err := r.db.Model(&role).Association("Permissions").Append(&perm); err != nil {
		return fmt.Errorf("failed to assign permission: %w", err)
	}

	return nil
}

// RemovePermission removes a permission from a role
func (r *RoleRepository) RemovePermission(roleID, permissionID uuid.UUID) error {
	role := models.Role{ID: roleID}
	perm := models.Permission{ID: permissionID}

	if err := r.db.Model(&role).Association("Permissions").Delete(&perm); err != nil {
		return fmt.Errorf("failed to remove permission: %w", err)
	}

	return nil
}

// GetPermissionsForRoles returns the distinct permission names granted to any
// of the given active roles.
func (r *RoleRepository) GetPermissionsForRoles(roleNames []string) ([]string, error) {
	if len(roleNames) == 0 {
		return nil, nil
	}

	var names []string
	err := r.db.Model(&models.Permission{}).
		Distinct("permissions.name").
		Joins("INNER JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("INNER JOIN roles ON roles.id = role_permissions.role_id").
		Where("roles.name IN ? AND roles.is_active = ?", roleNames, true).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for roles: %w", err)
	}

	return names, nil
}

// CountUsersWithRole counts how many users still hold the role
func (r *RoleRepository) CountUsersWithRole(roleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("user_roles").Where("role_id = ?", roleID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users with role: %w", err)
	}

	return count, nil
}
