package services

import (
	"context"
	"time"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/models"

	"github.com/google/uuid"
)

// EligibilityResolverInterface turns a student profile into the category
// patterns and seat level used to match cutoff records
type EligibilityResolverInterface interface {
	Resolve(profile models.StudentProfile) (models.EligibilityFilter, error)
}

// BranchNormalizerInterface maps the free-form branch names printed in cutoff
// reports onto canonical branch codes
type BranchNormalizerInterface interface {
	Normalize(branch string) string
	NormalizeAll(branches []string) []string
	MapWithOriginals(branches []string) []models.BranchMapping
	ExpandForSearch(branch string) []string
	CanonicalCodes() []string
}

// SuggestionServiceInterface defines the college recommendation operations
type SuggestionServiceInterface interface {
	SuggestColleges(ctx context.Context, profile models.StudentProfile, year, limit int) ([]dto.CollegeSuggestion, error)
	CollegeDetails(ctx context.Context, profile models.StudentProfile, collegeName, branch string, year, limit int) ([]dto.CollegeSuggestion, error)
	Statistics(ctx context.Context, profile models.StudentProfile, year int) (*models.SuggestionStatistics, error)
	AvailableBranches(ctx context.Context) ([]string, error)
	BranchMappings(ctx context.Context) (*models.BranchMappingReport, error)
	AvailableRegions(ctx context.Context) ([]string, error)
	TopCollegesForBranch(ctx context.Context, branchCode string, maxRank, limit int) ([]models.RankedCollege, error)
}

// DataServiceInterface defines administrative operations over the cutoff dataset
type DataServiceInterface interface {
	Overview() (*dto.DataOverview, error)
	ClearYear(performedBy uuid.UUID, year int) (int64, error)
	ClearAll(performedBy uuid.UUID) error
	RebuildRankings(ctx context.Context) (int, error)
}

// UserAdminServiceInterface defines administrative user management operations
type UserAdminServiceInterface interface {
	GetUserProfile(userID uuid.UUID) (*models.User, error)
	CreateUser(email, fullName, roleName string, performedBy uuid.UUID) (*models.User, string, error)
	UpdateUserProfile(userID uuid.UUID, updates map[string]interface{}, performedBy uuid.UUID) error
	DeleteUser(userID uuid.UUID, reason string, performedBy uuid.UUID) error
	SearchUsers(query string, searchType string, offset, limit int) ([]*models.User, int64, error)
	ListUsers(offset, limit int) ([]*models.User, int64, error)
	AssignRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error
	RevokeRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error
	ListRoles() ([]*models.Role, error)
	ListPermissions() ([]*models.Permission, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	LogLogin(userID uuid.UUID, ipAddress, userAgent string) error
	LogLogout(userID uuid.UUID, ipAddress, userAgent string) error
	LogProfileUpdate(userID, performedBy uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error
	LogPasswordReset(userID, performedBy uuid.UUID, ipAddress, userAgent string) error
	LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error
	LogUserCreated(userID, performedBy uuid.UUID, ipAddress, userAgent string) error
	LogUserDeleted(userID, performedBy uuid.UUID, ipAddress, userAgent string, reason string) error
	LogRoleAssigned(userID, performedBy uuid.UUID, roleName string) error
	LogRoleRevoked(userID, performedBy uuid.UUID, roleName string) error
	LogSuggestionRun(userID *uuid.UUID, rank int, matches int, ipAddress string) error
	LogDataIngested(performedBy uuid.UUID, fileName string, records int) error
	LogDataCleared(performedBy uuid.UUID, scope string, records int64) error
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
	GenerateSecurePassword() (string, error)
	GenerateSecurePasswordWithLength(length int) (string, error)
	PasswordStrength(password string) int
	AdminResetPassword(userID, adminID uuid.UUID) (string, error)
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

// SampleDataGeneratorInterface produces synthetic colleges and cutoffs for
// development environments
type SampleDataGeneratorInterface interface {
	GenerateColleges(count int) []*models.College
	GenerateCutoffs(college *models.College, year int) []models.Cutoff
	GenerateDemoUsers(count int) []*models.User
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type SuggestionLoggerInterface interface {
	LogSuggestionStarted(ctx context.Context, rank int, seatType, special string)
	LogSuggestionCompleted(ctx context.Context, resultsCount int, durationMs int64)
	LogSuggestionFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogIngestStarted(ctx context.Context, fileName string)
	LogIngestFileParsed(ctx context.Context, fileName string, colleges, cutoffs int)
	LogIngestCompleted(ctx context.Context, files, records int, durationMs int64)
	LogIngestFailed(ctx context.Context, fileName string, errorMsg string)
	LogRankingsRebuilt(ctx context.Context, rows int, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredPermission string)
}
