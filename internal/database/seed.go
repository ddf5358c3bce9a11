package database

import (
	"fmt"
	"log"
	"os"

	"cap-recommender/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type permissionSeed struct {
	name        string
	description string
	resource    string
	action      string
}

type roleSeed struct {
	name        string
	description string
	permissions []string
}

var defaultPermissions = []permissionSeed{
	{models.PermissionReadColleges, "Read college data", "colleges", "read"},
	{models.PermissionWriteColleges, "Write/update college data", "colleges", "write"},
	{models.PermissionDeleteColleges, "Delete college data", "colleges", "delete"},

	{models.PermissionReadUsers, "Read user data", "users", "read"},
	{models.PermissionWriteUsers, "Write/update user data", "users", "write"},
	{models.PermissionDeleteUsers, "Delete users", "users", "delete"},

	{models.PermissionReadRoles, "Read roles", "roles", "read"},
	{models.PermissionWriteRoles, "Write/update roles", "roles", "write"},
	{models.PermissionDeleteRoles, "Delete roles", "roles", "delete"},

	{models.PermissionReadPermissions, "Read permissions", "permissions", "read"},
	{models.PermissionWritePermissions, "Write/update permissions", "permissions", "write"},
	{models.PermissionDeletePermissions, "Delete permissions", "permissions", "delete"},

	{models.PermissionAdminAll, "Full admin access", "admin", "all"},

	{models.PermissionReadAnalytics, "Read analytics data", "analytics", "read"},
	{models.PermissionWriteAnalytics, "Write analytics data", "analytics", "write"},
}

var defaultRoles = []roleSeed{
	{
		name:        models.RoleSuperAdmin,
		description: "Super administrator with full system access",
		permissions: []string{models.PermissionAdminAll},
	},
	{
		name:        models.RoleAdmin,
		description: "System administrator",
		permissions: []string{
			models.PermissionReadColleges, models.PermissionWriteColleges, models.PermissionDeleteColleges,
			models.PermissionReadUsers, models.PermissionWriteUsers, models.PermissionDeleteUsers,
			models.PermissionReadRoles, models.PermissionWriteRoles,
			models.PermissionReadPermissions, models.PermissionReadAnalytics,
		},
	},
	{
		name:        models.RoleModerator,
		description: "Content moderator",
		permissions: []string{
			models.PermissionReadColleges, models.PermissionWriteColleges,
			models.PermissionReadUsers, models.PermissionReadAnalytics,
		},
	},
	{
		name:        models.RoleUser,
		description: "Regular user",
		permissions: []string{models.PermissionReadColleges},
	},
	{
		name:        models.RoleGuest,
		description: "Guest user with minimal access",
		permissions: []string{models.PermissionReadColleges},
	},
}

// SeedAuthData creates the default permissions and roles, and an initial
// super admin if ADMIN_EMAIL and ADMIN_PASSWORD are set. All operations are
// idempotent so the seed can run on every startup.
func (db *DB) SeedAuthData() error {
	permsByName := make(map[string]*models.Permission, len(defaultPermissions))

	for _, seed := range defaultPermissions {
		var perm models.Permission
		err := db.DB.Where("name = ?", seed.name).First(&perm).Error
		if err == gorm.ErrRecordNotFound {
			perm = models.Permission{
				Name:        seed.name,
				Description: seed.description,
				Resource:    seed.resource,
				Action:      seed.action,
			}
			if err := db.DB.Create(&perm).Error; err != nil {
				return fmt.Errorf("failed to create permission %s: %w", seed.name, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up permission %s: %w", seed.name, err)
		}
		permsByName[seed.name] = &perm
	}

	for _, seed := range defaultRoles {
		var role models.Role
		err := db.DB.Where("name = ?", seed.name).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			role = models.Role{
				Name:        seed.name,
				Description: seed.description,
				IsActive:    true,
			}
			for _, permName := range seed.permissions {
				if perm, ok := permsByName[permName]; ok {
					role.Permissions = append(role.Permissions, *perm)
				}
			}
			if err := db.DB.Create(&role).Error; err != nil {
				return fmt.Errorf("failed to create role %s: %w", seed.name, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up role %s: %w", seed.name, err)
		}
	}

	return db.seedAdminUser()
}

func (db *DB) seedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	var existing models.User
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	var superAdmin models.Role
	if err := db.DB.Where("name = ?", models.RoleSuperAdmin).First(&superAdmin).Error; err != nil {
		return fmt.Errorf("super_admin role missing: %w", err)
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		IsActive:     true,
		IsVerified:   true,
		Roles:        []models.Role{superAdmin},
	}

	if err := db.DB.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Seeded admin user %s with super_admin role", email)
	return nil
}
