package services

import (
	"errors"
	"fmt"
	"strings"

	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 1000
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidSearchQuery = errors.New("invalid search query: query cannot be empty")
	ErrInvalidSearchType  = errors.New("invalid search type")
	ErrRoleNotAssigned    = errors.New("user does not hold this role")
)

// ValidateSearchType validates the search type
func ValidateSearchType(searchType string) error {
	switch searchType {
	case "name", "email", "phone":
		return nil
	}
	return ErrInvalidSearchType
}

// UserAdminService handles administrative user management
type UserAdminService struct {
	userRepo        repositories.UserRepositoryInterface
	roleRepo        repositories.RoleRepositoryInterface
	permissionRepo  repositories.PermissionRepositoryInterface
	passwordService PasswordServiceInterface
	auditService    AuditServiceInterface
}

// NewUserAdminService creates a new user admin service
func NewUserAdminService(
	userRepo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	passwordService PasswordServiceInterface,
	auditService AuditServiceInterface,
) UserAdminServiceInterface {
	return &UserAdminService{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		permissionRepo:  permissionRepo,
		passwordService: passwordService,
		auditService:    auditService,
	}
}

// GetUserProfile retrieves a user profile with roles by ID
func (s *UserAdminService) GetUserProfile(userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByIDWithRoles(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return user, nil
}

// CreateUser creates a new user with a temporary password and the given role.
// Returns the temporary password so it can be handed to the user once.
func (s *UserAdminService) CreateUser(email, fullName, roleName string, performedBy uuid.UUID) (*models.User, string, error) {
	if strings.TrimSpace(email) == "" {
		return nil, "", ErrInvalidEmail
	}

	role, err := s.roleRepo.GetByName(roleName)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, "", ErrUnknownRole
		}
		return nil, "", fmt.Errorf("failed to look up role: %w", err)
	}

	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	tempPassword, err := s.passwordService.GenerateSecurePassword()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hashedPassword, err := s.passwordService.HashPasswordWithoutValidation(tempPassword)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.userRepo.AssignRole(user.ID, role.ID); err != nil {
		return nil, "", fmt.Errorf("failed to assign role: %w", err)
	}
	user.Roles = append(user.Roles, *role)

	// Audit failure does not undo the creation
	_ = s.auditService.LogUserCreated(user.ID, performedBy, "", "")

	return user, tempPassword, nil
}

// UpdateUserProfile updates mutable profile fields of a user
func (s *UserAdminService) UpdateUserProfile(userID uuid.UUID, updates map[string]interface{}, performedBy uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidUserID
	}

	if len(updates) == 0 {
		return errors.New("no updates provided")
	}

	_, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	stripProtectedFields(updates)

	if err := s.userRepo.UpdateFields(userID, updates); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	_ = s.auditService.LogProfileUpdate(userID, performedBy, "", "", updates)

	return nil
}

// DeleteUser soft deletes a user
func (s *UserAdminService) DeleteUser(userID uuid.UUID, reason string, performedBy uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidUserID
	}

	_, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	_ = s.auditService.LogUserDeleted(userID, performedBy, "", "", reason)

	return nil
}

// SearchUsers searches for users by name, email or phone
func (s *UserAdminService) SearchUsers(query string, searchType string, offset, limit int) ([]*models.User, int64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, ErrInvalidSearchQuery
	}

	if err := ValidateSearchType(searchType); err != nil {
		return nil, 0, err
	}

	offset, limit = normalizePagination(offset, limit)

	criteria := repositories.UserSearchCriteria{
		Query:      query,
		SearchType: searchType,
	}

	users, total, err := s.userRepo.SearchUsers(criteria, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}

	return users, total, nil
}

// ListUsers lists users with pagination
func (s *UserAdminService) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	offset, limit = normalizePagination(offset, limit)

	users, total, err := s.userRepo.ListUsers(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// AssignRole grants a role to a user
func (s *UserAdminService) AssignRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error {
	user, role, err := s.resolveUserAndRole(userID, roleName)
	if err != nil {
		return err
	}

	if user.HasRole(role.Name) {
		// Idempotent: granting a held role is a no-op
		return nil
	}

	if err := s.userRepo.AssignRole(user.ID, role.ID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	_ = s.auditService.LogRoleAssigned(user.ID, performedBy, role.Name)

	return nil
}

// RevokeRole removes a role from a user
func (s *UserAdminService) RevokeRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error {
	user, role, err := s.resolveUserAndRole(userID, roleName)
	if err != nil {
		return err
	}

	if !user.HasRole(role.Name) {
		return ErrRoleNotAssigned
	}

	if err := s.userRepo.RemoveRole(user.ID, role.ID); err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}

	_ = s.auditService.LogRoleRevoked(user.ID, performedBy, role.Name)

	return nil
}

// ListRoles lists all roles with their permissions
func (s *UserAdminService) ListRoles() ([]*models.Role, error) {
	roles, err := s.roleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// ListPermissions lists all permissions
func (s *UserAdminService) ListPermissions() ([]*models.Permission, error) {
	permissions, err := s.permissionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return permissions, nil
}

func (s *UserAdminService) resolveUserAndRole(userID uuid.UUID, roleName string) (*models.User, *models.Role, error) {
	if userID == uuid.Nil {
		return nil, nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByIDWithRoles(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	role, err := s.roleRepo.GetByName(roleName)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, nil, ErrUnknownRole
		}
		return nil, nil, fmt.Errorf("failed to look up role: %w", err)
	}

	return user, role, nil
}

func stripProtectedFields(updates map[string]interface{}) {
	delete(updates, "id")
	delete(updates, "email")
	delete(updates, "password_hash")
	delete(updates, "deleted_at")
}

func normalizePagination(offset, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
