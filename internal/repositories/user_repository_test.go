package repositories

import (
	"fmt"
	"testing"

	"cap-recommender/internal/database"
	"cap-recommender/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	// Create test user
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
	}
	err := s.repo.Create(user)
	s.NoError(err)

	// Test getting existing user
	foundUser, err := s.repo.GetByEmail("test@example.com")
	s.NoError(err)
	s.Equal(user.ID, foundUser.ID)
	s.Equal(user.Email, foundUser.Email)

	// Test getting non-existent user
	_, err = s.repo.GetByEmail("nonexistent@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Update() {
	// Create test user
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
	}
	err := s.repo.Create(user)
	s.NoError(err)

	// Update user
	user.FullName = "Updated User"
	user.FailedLoginAttempts = 2
	err = s.repo.Update(user)
	s.NoError(err)

	// Verify update
	updatedUser, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("Updated User", updatedUser.FullName)
	s.Equal(2, updatedUser.FailedLoginAttempts)
}

func (s *UserRepositorySuite) TestUserRepository_UnlockAccount() {
	// Create locked user
	user := &models.User{
		Email:               "locked@example.com",
		PasswordHash:        "hashed_password",
		FullName:            "Test User",
		IsActive:            true,
		FailedLoginAttempts: 3,
	}
	err := s.repo.Create(user)
	s.NoError(err)

	// Unlock account
	err = s.repo.UnlockAccount(user.ID)
	s.NoError(err)

	// Verify unlock
	unlockedUser, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(0, unlockedUser.FailedLoginAttempts)
	s.Nil(unlockedUser.LockedAt)
}

func (s *UserRepositorySuite) TestUserRepository_Delete() {
	// Create test user
	user := &models.User{
		Email:        "delete@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
	}
	err := s.repo.Create(user)
	s.NoError(err)

	// Delete user
	err = s.repo.Delete(user.ID)
	s.NoError(err)

	// Verify user is soft deleted (not found by normal query)
	_, err = s.repo.GetByID(user.ID)
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_ListUsers() {
	// Create test users
	for i := 0; i < 5; i++ {
		user := &models.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "hashed_password",
			FullName:     fmt.Sprintf("Test User%d", i),
			IsActive:     true,
		}
		err := s.repo.Create(user)
		s.NoError(err)
	}

	// Test pagination
	users, total, err := s.repo.ListUsers(0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(users, 3)

	// Test second page
	users, total, err = s.repo.ListUsers(3, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(users, 2)
}

func (s *UserRepositorySuite) TestUserRepository_RoleAssignment() {
	user := &models.User{
		Email:        "roles@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Role User",
		IsActive:     true,
	}
	s.NoError(s.repo.Create(user))

	role := &models.Role{Name: models.RoleModerator, IsActive: true}
	s.NoError(s.db.Create(role).Error)

	// Assign the role
	s.NoError(s.repo.AssignRole(user.ID, role.ID))

	loaded, err := s.repo.GetByIDWithRoles(user.ID)
	s.NoError(err)
	s.True(loaded.HasRole(models.RoleModerator))

	// Remove the role
	s.NoError(s.repo.RemoveRole(user.ID, role.ID))

	loaded, err = s.repo.GetByIDWithRoles(user.ID)
	s.NoError(err)
	s.False(loaded.HasRole(models.RoleModerator))
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmailWithRoles() {
	role := &models.Role{
		Name:     models.RoleUser,
		IsActive: true,
		Permissions: []models.Permission{
			{Name: models.PermissionReadColleges, Resource: "colleges", Action: "read"},
		},
	}
	s.NoError(s.db.Create(role).Error)

	user := &models.User{
		Email:        "withroles@example.com",
		PasswordHash: "hashed_password",
		FullName:     "With Roles",
		IsActive:     true,
		Roles:        []models.Role{*role},
	}
	s.NoError(s.db.Create(user).Error)

	loaded, err := s.repo.GetByEmailWithRoles("withroles@example.com")
	s.NoError(err)
	s.Require().Len(loaded.Roles, 1)
	s.Equal(models.RoleUser, loaded.Roles[0].Name)
	s.Require().Len(loaded.Roles[0].Permissions, 1)
	s.Equal(models.PermissionReadColleges, loaded.Roles[0].Permissions[0].Name)
}

func (s *UserRepositorySuite) TestUserRepository_UpdatePasswordHash() {
	// Create test user
	user := &models.User{
		Email:        "password@example.com",
		PasswordHash: "old_hash",
		FullName:     "Test User",
		IsActive:     true,
	}
	err := s.repo.Create(user)
	s.NoError(err)

	// Update password hash
	newHash := "new_hash_value"
	err = s.repo.UpdatePasswordHash(user.ID, newHash)
	s.NoError(err)

	// Verify update
	updatedUser, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(newHash, updatedUser.PasswordHash)

	// Test with nil UUID
	err = s.repo.UpdatePasswordHash(uuid.Nil, "hash")
	s.Error(err)
	s.Contains(err.Error(), "user ID cannot be nil")

	// Test with empty hash
	err = s.repo.UpdatePasswordHash(user.ID, "")
	s.Error(err)
	s.Contains(err.Error(), "password hash cannot be empty")

	// Test with non-existent user
	err = s.repo.UpdatePasswordHash(uuid.New(), "new_hash")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_SearchUsers() {
	for _, u := range []models.User{
		{Email: "asha@example.com", PasswordHash: "h", FullName: "Asha Patil", IsActive: true},
		{Email: "rohan@example.com", PasswordHash: "h", FullName: "Rohan Deshmukh", IsActive: true, Phone: "+919999911111"},
	} {
		user := u
		s.NoError(s.repo.Create(&user))
	}

	users, total, err := s.repo.SearchUsers(UserSearchCriteria{Query: "patil", SearchType: "name"}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(users, 1)
	s.Equal("Asha Patil", users[0].FullName)

	users, total, err = s.repo.SearchUsers(UserSearchCriteria{Query: "ROHAN@example.com", SearchType: "email"}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(users, 1)

	_, _, err = s.repo.SearchUsers(UserSearchCriteria{Query: "x", SearchType: "bogus"}, 0, 10)
	s.Error(err)
}
