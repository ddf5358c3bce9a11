package services

import (
	"errors"
	"fmt"
	"time"

	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionLogin:           true,
		models.AuditActionLogout:          true,
		models.AuditActionRegister:        true,
		models.AuditActionFailedLogin:     true,
		models.AuditActionAccountLocked:   true,
		models.AuditActionAccountUnlock:   true,
		models.AuditActionTokenRefresh:    true,
		models.AuditActionPasswordReset:   true,
		models.AuditActionProfileUpdated:  true,
		models.AuditActionPasswordUpdated: true,
		models.AuditActionRoleAssigned:    true,
		models.AuditActionRoleRevoked:     true,
		models.AuditActionUserCreated:     true,
		models.AuditActionUserDeleted:     true,
		models.AuditActionUserViewed:      true,
		models.AuditActionSuggestionRun:   true,
		models.AuditActionDataIngested:    true,
		models.AuditActionDataCleared:     true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetUserActivity retrieves activity logs for a user with optional date filtering and pagination
func (s *AuditService) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, 0, ErrAuditDateRange
	}

	return s.repo.GetUserActivity(userID, startDate, endDate, offset, limit)
}

// LogLogin logs a successful login event
func (s *AuditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogLogout logs a logout event
func (s *AuditService) LogLogout(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogout,
		Resource:   "auth",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogProfileUpdate logs a user profile update event
func (s *AuditService) LogProfileUpdate(userID, performedBy uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionProfileUpdated,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   models.JSONBMap(changes),
	}
	if performedBy != uuid.Nil {
		log.SetMetadata("performed_by", performedBy.String())
	}
	return s.CreateAuditLog(log)
}

// LogPasswordReset logs an admin password reset event
func (s *AuditService) LogPasswordReset(userID, performedBy uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPasswordReset,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"performed_by": performedBy.String(),
		},
	}
	return s.CreateAuditLog(log)
}

// LogPasswordUpdate logs a self-service password update
func (s *AuditService) LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPasswordUpdated,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.CreateAuditLog(log)
}

// LogUserCreated logs a user creation event
func (s *AuditService) LogUserCreated(userID, performedBy uuid.UUID, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionUserCreated,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"performed_by": performedBy.String(),
		},
	}
	return s.CreateAuditLog(log)
}

// LogUserDeleted logs a user deletion event
func (s *AuditService) LogUserDeleted(userID, performedBy uuid.UUID, ipAddress, userAgent string, reason string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionUserDeleted,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"performed_by": performedBy.String(),
			"reason":       reason,
		},
	}
	return s.CreateAuditLog(log)
}

// LogRoleAssigned logs a role grant
func (s *AuditService) LogRoleAssigned(userID, performedBy uuid.UUID, roleName string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionRoleAssigned,
		Resource:   "role",
		ResourceID: userID.String(),
		Metadata: models.JSONBMap{
			"performed_by": performedBy.String(),
			"role":         roleName,
		},
	}
	return s.CreateAuditLog(log)
}

// LogRoleRevoked logs a role revocation
func (s *AuditService) LogRoleRevoked(userID, performedBy uuid.UUID, roleName string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionRoleRevoked,
		Resource:   "role",
		ResourceID: userID.String(),
		Metadata: models.JSONBMap{
			"performed_by": performedBy.String(),
			"role":         roleName,
		},
	}
	return s.CreateAuditLog(log)
}

// LogSuggestionRun records a suggestion query without the caste field;
// only the rank and result size are kept
func (s *AuditService) LogSuggestionRun(userID *uuid.UUID, rank int, matches int, ipAddress string) error {
	log := &models.AuditLog{
		UserID:    userID,
		Action:    models.AuditActionSuggestionRun,
		Resource:  "suggestion",
		IPAddress: ipAddress,
		Metadata: models.JSONBMap{
			"rank":    rank,
			"matches": matches,
		},
	}
	return s.CreateAuditLog(log)
}

// LogDataIngested logs a completed report ingestion
func (s *AuditService) LogDataIngested(performedBy uuid.UUID, fileName string, records int) error {
	log := &models.AuditLog{
		UserID:     &performedBy,
		Action:     models.AuditActionDataIngested,
		Resource:   "data",
		ResourceID: fileName,
		Metadata: models.JSONBMap{
			"file":    fileName,
			"records": records,
		},
	}
	return s.CreateAuditLog(log)
}

// LogDataCleared logs a dataset clear operation
func (s *AuditService) LogDataCleared(performedBy uuid.UUID, scope string, records int64) error {
	log := &models.AuditLog{
		UserID:     &performedBy,
		Action:     models.AuditActionDataCleared,
		Resource:   "data",
		ResourceID: scope,
		Metadata: models.JSONBMap{
			"scope":   scope,
			"records": records,
		},
	}
	return s.CreateAuditLog(log)
}
