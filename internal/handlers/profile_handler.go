package handlers

import (
	"net/http"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/errors"
	"cap-recommender/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles the authenticated user's self-service endpoints
type ProfileHandler struct {
	userService     services.UserAdminServiceInterface
	passwordService services.PasswordServiceInterface
	auditService    services.AuditServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(
	userService services.UserAdminServiceInterface,
	passwordService services.PasswordServiceInterface,
	auditService services.AuditServiceInterface,
) *ProfileHandler {
	return &ProfileHandler{
		userService:     userService,
		passwordService: passwordService,
		auditService:    auditService,
	}
}

// GetMyProfile retrieves the authenticated user's profile
// @Summary Get my profile
// @Description Retrieve the authenticated user's profile with roles
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse} "User profile"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/me [get]
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userService.GetUserProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Phone:     user.Phone,
			Roles:     user.RoleNames(),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	})
}

// UpdateMyPassword changes the authenticated user's password
// @Summary Update my password
// @Description Change the authenticated user's password. Requires the current password.
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse "Password updated successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request or weak password"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Current password is incorrect or AUTH_004 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/me/password [put]
func (h *ProfileHandler) UpdateMyPassword(c echo.Context) error {
	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.passwordService.UpdatePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case services.ErrCurrentPasswordWrong:
			return SendError(c, errors.AuthInvalidCredentials, errors.WithDetails("Current password is incorrect"))
		case services.ErrSamePassword,
			services.ErrPasswordEmpty,
			services.ErrPasswordTooShort,
			services.ErrPasswordTooLong,
			services.ErrPasswordNoUppercase,
			services.ErrPasswordNoLowercase,
			services.ErrPasswordNoNumber:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	// Audit failure does not undo the change
	_ = h.auditService.LogPasswordUpdate(userID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Password updated successfully",
	})
}

// GetMyActivity retrieves the authenticated user's audit trail
// @Summary Get my activity
// @Description List the authenticated user's audit log entries
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Result offset"
// @Param limit query int false "Result limit" default(50)
// @Success 200 {object} SuccessResponse{data=dto.AuditLogsListResponse} "Activity entries"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/me/activity [get]
func (h *ProfileHandler) GetMyActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	logs, total, err := h.auditService.GetUserActivity(userID, nil, nil, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AuditLogsListResponse{
			Logs:   logs,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}
