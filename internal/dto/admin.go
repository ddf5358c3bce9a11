package dto

import (
	"time"

	"cap-recommender/internal/models"

	"github.com/google/uuid"
)

// Admin Request DTOs

// UnlockUserRequest represents a request to unlock a user account
type UnlockUserRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// ListUsersRequest represents query parameters for listing users
type ListUsersRequest struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=1,max=100"`
}

// SearchUsersRequest represents the request to search for users
type SearchUsersRequest struct {
	Query      string `query:"q" validate:"required,min=1"`
	SearchType string `query:"type" validate:"omitempty,oneof=name email phone"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset     int    `query:"offset" validate:"omitempty,min=0"`
}

// CreateUserRequest represents the request to create a new user
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,max=50"`
}

// UpdateUserProfileRequest represents the request to update a user profile
type UpdateUserProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,min=9,max=16"`
	IsActive *bool   `json:"isActive"`
}

// AssignRoleRequest represents the request to grant or revoke a role
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,min=1,max=50"`
}

// ClearYearRequest represents the request to drop one year of cutoff data
type ClearYearRequest struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
}

// Admin Response DTOs

// UserResponse represents a user in admin API responses
type UserResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	FullName            string     `json:"fullName"`
	Phone               string     `json:"phone,omitempty"`
	Roles               []string   `json:"roles"`
	IsActive            bool       `json:"isActive"`
	FailedLoginAttempts int        `json:"failedLoginAttempts"`
	LockedAt            *time.Time `json:"lockedAt,omitempty"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// UsersListResponse represents a paginated list of users
type UsersListResponse struct {
	Users  []*models.User `json:"users"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// CreateUserResponse represents the response after creating a user
type CreateUserResponse struct {
	User              *models.User `json:"user"`
	TemporaryPassword string       `json:"temporaryPassword"`
	Message           string       `json:"message"`
}

// RolesListResponse lists the configured roles
type RolesListResponse struct {
	Roles []*models.Role `json:"roles"`
}

// PermissionsListResponse lists the configured permissions
type PermissionsListResponse struct {
	Permissions []*models.Permission `json:"permissions"`
}

// AuditLogResponse represents an audit log entry
type AuditLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     *uuid.UUID      `json:"userId,omitempty"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId"`
	IPAddress  string          `json:"ipAddress"`
	UserAgent  string          `json:"userAgent"`
	Metadata   models.JSONBMap `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// AuditLogsListResponse represents a paginated list of audit logs
type AuditLogsListResponse struct {
	Logs   []*models.AuditLog `json:"logs"`
	Total  int64              `json:"total"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
}

// DataOverview summarizes the loaded cutoff dataset
type DataOverview struct {
	Colleges       int64    `json:"colleges"`
	Cutoffs        int64    `json:"cutoffs"`
	RankedColleges int64    `json:"rankedColleges"`
	Years          []int    `json:"years"`
	Categories     int      `json:"categories"`
	Branches       int      `json:"branches"`
	Regions        []string `json:"regions"`
}

// ClearDataResponse reports how many records a clear operation removed
type ClearDataResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// RebuildRankingsResponse reports the size of the rebuilt ranking table
type RebuildRankingsResponse struct {
	Rows    int    `json:"rows"`
	Message string `json:"message"`
}
