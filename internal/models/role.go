package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Predefined role names seeded at startup.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
	RoleUser       = "user"
	RoleGuest      = "guest"
)

// Predefined permission names in "action:resource" form.
const (
	PermissionReadColleges   = "read:colleges"
	PermissionWriteColleges  = "write:colleges"
	PermissionDeleteColleges = "delete:colleges"

	PermissionReadUsers   = "read:users"
	PermissionWriteUsers  = "write:users"
	PermissionDeleteUsers = "delete:users"

	PermissionReadRoles   = "read:roles"
	PermissionWriteRoles  = "write:roles"
	PermissionDeleteRoles = "delete:roles"

	PermissionReadPermissions   = "read:permissions"
	PermissionWritePermissions  = "write:permissions"
	PermissionDeletePermissions = "delete:permissions"

	PermissionReadAnalytics  = "read:analytics"
	PermissionWriteAnalytics = "write:analytics"

	PermissionAdminAll = "admin:all"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Name == "" {
		return errors.New("role name is required")
	}
	return nil
}

// PermissionNames returns the names of the role's permissions.
func (r *Role) PermissionNames() []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.Name)
	}
	return names
}

func (r *Role) TableName() string {
	return "roles"
}

type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	Resource    string    `gorm:"type:varchar(100);not null" json:"resource"`
	Action      string    `gorm:"type:varchar(100);not null" json:"action"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Name == "" {
		return errors.New("permission name is required")
	}
	return nil
}

func (p *Permission) TableName() string {
	return "permissions"
}

// HasPermission checks whether a granted permission set satisfies a required
// permission. Grants are matched exactly, then via the wildcard forms
// "admin:all", "{action}:all" and "all:{resource}".
func HasPermission(granted []string, required string) bool {
	for _, p := range granted {
		if p == required || p == PermissionAdminAll {
			return true
		}
	}

	action, resource, found := strings.Cut(required, ":")
	if !found {
		return false
	}

	for _, p := range granted {
		if p == action+":all" || p == "all:"+resource {
			return true
		}
	}

	return false
}
