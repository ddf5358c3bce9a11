package database

import (
	"fmt"
	"testing"

	"cap-recommender/internal/config"
	"cap-recommender/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestUserWithRole(t *testing.T, db *DB, email, roleName string) *models.User {
	t.Helper()

	role := &models.Role{Name: roleName, IsActive: true}
	if err := db.Where("name = ?", roleName).FirstOrCreate(role).Error; err != nil {
		t.Fatalf("failed to create test role: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		IsActive:     true,
		Roles:        []models.Role{*role},
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCollege(t *testing.T, db *DB, code int, name string) *models.College {
	t.Helper()

	college := &models.College{
		Code:   code,
		Name:   name,
		Status: models.CollegeStatusGovernment,
	}

	if err := db.Create(college).Error; err != nil {
		t.Fatalf("failed to create test college: %v", err)
	}

	return college
}

func CreateTestCutoff(t *testing.T, db *DB, college *models.College, branch, category string, rank int) *models.Cutoff {
	t.Helper()

	cutoff := &models.Cutoff{
		CollegeID:   college.ID,
		CollegeCode: college.Code,
		Branch:      branch,
		Category:    category,
		Rank:        &rank,
		Level:       "state level",
	}

	if err := db.Create(cutoff).Error; err != nil {
		t.Fatalf("failed to create test cutoff: %v", err)
	}

	return cutoff
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: SetupTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"ranked_colleges",
		"cutoffs",
		"colleges",
		"audit_logs",
		"blacklisted_tokens",
		"refresh_tokens",
		"user_roles",
		"role_permissions",
		"permissions",
		"roles",
		"users",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"ranked_colleges",
		"cutoffs",
		"colleges",
		"audit_logs",
		"blacklisted_tokens",
		"refresh_tokens",
		"user_roles",
		"role_permissions",
		"permissions",
		"roles",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
