package repositories

import (
	"time"

	"cap-recommender/internal/models"

	"github.com/google/uuid"
)

// UserSearchCriteria defines search criteria for users
type UserSearchCriteria struct {
	Query      string
	SearchType string // "name", "email", "phone"
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDWithRoles(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailWithRoles(email string) (*models.User, error)
	GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error)
	SearchUsers(criteria UserSearchCriteria, offset, limit int) ([]*models.User, int64, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdateEmail(userID uuid.UUID, newEmail string) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UnlockAccount(userID uuid.UUID) error
	AssignRole(userID, roleID uuid.UUID) error
	RemoveRole(userID, roleID uuid.UUID) error
	Delete(userID uuid.UUID) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

// RoleRepositoryInterface defines the contract for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	List() ([]*models.Role, error)
	Update(role *models.Role) error
	Delete(id uuid.UUID) error
	AssignPermission(roleID, permissionID uuid.UUID) error
	RemovePermission(roleID, permissionID uuid.UUID) error
	GetPermissionsForRoles(roleNames []string) ([]string, error)
	CountUsersWithRole(roleID uuid.UUID) (int64, error)
}

// PermissionRepositoryInterface defines the contract for permission repository operations
type PermissionRepositoryInterface interface {
	Create(permission *models.Permission) error
	GetByID(id uuid.UUID) (*models.Permission, error)
	GetByName(name string) (*models.Permission, error)
	List() ([]*models.Permission, error)
	Delete(id uuid.UUID) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByID(id uuid.UUID) (*models.RefreshToken, error)
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByIPAddress(ipAddress string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetFailedLoginAttempts(email string, since time.Time) (int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

// CollegeRepositoryInterface defines the contract for college repository operations
type CollegeRepositoryInterface interface {
	Create(college *models.College) error
	GetByID(id uuid.UUID) (*models.College, error)
	GetByCode(code int) (*models.College, error)
	FindOrCreate(college *models.College) (*models.College, error)
	SearchByName(name string, offset, limit int) ([]*models.College, int64, error)
	List(offset, limit int) ([]*models.College, int64, error)
	ListRegions() ([]string, error)
	UpdateRegion(code int, region string) error
	Count() (int64, error)
	DeleteAll() error
}

// CutoffRepositoryInterface defines the contract for cutoff record operations
type CutoffRepositoryInterface interface {
	Create(cutoff *models.Cutoff) error
	CreateBatch(cutoffs []models.Cutoff) error
	FindEligible(rank int, filter models.EligibilityFilter, year, limit int) ([]models.Cutoff, error)
	FindEligibleForBranches(rank int, filter models.EligibilityFilter, branches []string, year, limit int) ([]models.Cutoff, error)
	GetByCollegeCode(code int, year int) ([]models.Cutoff, error)
	ListWithColleges(year int) ([]models.Cutoff, error)
	DistinctBranches() ([]string, error)
	DistinctCategories() ([]string, error)
	DistinctYears() ([]int, error)
	Count() (int64, error)
	DeleteByYear(year int) (int64, error)
	DeleteAll() error
}

// RankedCollegeRepositoryInterface defines the contract for the denormalized
// ranking table rebuilt after each ingestion run.
type RankedCollegeRepositoryInterface interface {
	Rebuild(entries []models.RankedCollege) error
	GetByBranchCode(branchCode string, maxRank, limit int) ([]models.RankedCollege, error)
	Count() (int64, error)
}
