package handlers

import (
	"net/http"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/errors"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles administrative user management endpoints
type AdminHandler struct {
	userService     services.UserAdminServiceInterface
	passwordService services.PasswordServiceInterface
	auditService    services.AuditServiceInterface
	userRepo        repositories.UserRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userService services.UserAdminServiceInterface,
	passwordService services.PasswordServiceInterface,
	auditService services.AuditServiceInterface,
	userRepo repositories.UserRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		passwordService: passwordService,
		auditService:    auditService,
		userRepo:        userRepo,
		auditRepo:       auditRepo,
	}
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                  user.ID,
		Email:               user.Email,
		FullName:            user.FullName,
		Phone:               user.Phone,
		Roles:               user.RoleNames(),
		IsActive:            user.IsActive,
		FailedLoginAttempts: user.FailedLoginAttempts,
		LockedAt:            user.LockedAt,
		LastLoginAt:         user.LastLoginAt,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}

func parseUserIDParam(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, SendError(c, errors.UserInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}
	return userID, nil
}

// ListUsers lists all users with pagination
// @Summary List all users (admin)
// @Description Admin endpoint to list all users with pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse "Users retrieved successfully with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	if page < 1 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > 100 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}

	offset := (page - 1) * limit

	users, total, err := h.userService.ListUsers(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = userResponse(user)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// SearchUsers searches users by name, email or phone
// @Summary Search users (admin)
// @Description Admin endpoint to search users. Name search is a case-insensitive substring match; email and phone are exact.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search query"
// @Param type query string false "Search type: name, email or phone" default(name)
// @Param offset query int false "Result offset"
// @Param limit query int false "Result limit (max 1000)"
// @Success 200 {object} SuccessResponse "Matching users"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid search parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/search [get]
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	var req dto.SearchUsersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if req.SearchType == "" {
		req.SearchType = "name"
	}

	users, total, err := h.userService.SearchUsers(req.Query, req.SearchType, req.Offset, req.Limit)
	if err != nil {
		switch err {
		case services.ErrInvalidSearchQuery, services.ErrInvalidSearchType:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = userResponse(user)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": req.Offset,
			"limit":  req.Limit,
		},
	})
}

// GetUserByID retrieves a specific user by ID
// @Summary Get user by ID (admin)
// @Description Admin endpoint to retrieve detailed user information with roles
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 400 {object} errors.ErrorResponse "USER_004 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId} [get]
func (h *AdminHandler) GetUserByID(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: userResponse(user),
	})
}

// CreateUser creates a new user with a temporary password
// @Summary Create user (admin)
// @Description Admin endpoint to create a user. The response contains a one-time temporary password.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} SuccessResponse{data=dto.CreateUserResponse} "User created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - Email already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Role == "" {
		req.Role = models.RoleUser
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, tempPassword, err := h.userService.CreateUser(req.Email, req.FullName, req.Role, adminID)
	if err != nil {
		switch err {
		case services.ErrEmailAlreadyExists:
			return SendError(c, errors.UserAlreadyExists)
		case services.ErrInvalidEmail:
			return SendError(c, errors.ValidationInvalidEmail)
		case services.ErrUnknownRole:
			return SendError(c, errors.RoleNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.CreateUserResponse{
			User:              user,
			TemporaryPassword: tempPassword,
			Message:           "Share the temporary password with the user over a secure channel",
		},
		Message: "User created successfully",
	})
}

// UpdateUserProfile updates a user's mutable profile fields
// @Summary Update user profile (admin)
// @Description Admin endpoint to update full name, phone or active flag
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param request body dto.UpdateUserProfileRequest true "Fields to update"
// @Success 200 {object} SuccessResponse "Profile updated successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId} [put]
func (h *AdminHandler) UpdateUserProfile(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("No updates provided"))
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.userService.UpdateUserProfile(userID, updates, adminID); err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Profile updated successfully",
	})
}

// DeleteUser soft deletes a user
// @Summary Delete user (admin)
// @Description Admin endpoint to soft delete a user. Cannot delete own account.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param reason query string false "Deletion reason"
// @Success 200 {object} SuccessResponse "User deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID or cannot delete own account"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if adminID == userID {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Cannot delete your own account"))
	}

	if err := h.userService.DeleteUser(userID, c.QueryParam("reason"), adminID); err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User deleted successfully",
	})
}

// UnlockUser unlocks a user account
// @Summary Unlock user account (admin)
// @Description Admin endpoint to unlock a locked user account
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse "User unlocked successfully"
// @Failure 400 {object} errors.ErrorResponse "USER_004 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/unlock [post]
func (h *AdminHandler) UnlockUser(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	if err := h.userRepo.UnlockAccount(userID); err != nil {
		return SendSystemError(c, err)
	}

	adminID, _ := getUserIDFromContext(c)
	h.createAuditLog(adminID, models.AuditActionAccountUnlock, user.ID.String(), c)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User account unlocked successfully",
		Data: map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		},
	})
}

// ResetUserPassword resets a user's password to a generated temporary one
// @Summary Reset user password (admin)
// @Description Admin endpoint to reset a password. The response contains a one-time temporary password.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse "Password reset successfully"
// @Failure 400 {object} errors.ErrorResponse "USER_004 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/reset-password [post]
func (h *AdminHandler) ResetUserPassword(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	tempPassword, err := h.passwordService.AdminResetPassword(userID, adminID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	// Audit failure does not undo the reset
	_ = h.auditService.LogPasswordReset(userID, adminID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"temporary_password": tempPassword,
		},
		Message: "Password reset successfully",
	})
}

// AssignRole grants a role to a user
// @Summary Assign role (admin)
// @Description Admin endpoint to grant a role to a user. Granting a held role is a no-op.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param request body dto.AssignRoleRequest true "Role name"
// @Success 200 {object} SuccessResponse "Role assigned successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 or ROLE_001 - User or role not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/roles [post]
func (h *AdminHandler) AssignRole(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	var req dto.AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.userService.AssignRole(userID, req.Role, adminID); err != nil {
		switch err {
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrUnknownRole:
			return SendError(c, errors.RoleNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Role assigned successfully",
	})
}

// RevokeRole removes a role from a user
// @Summary Revoke role (admin)
// @Description Admin endpoint to remove a role from a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param role path string true "Role name"
// @Success 200 {object} SuccessResponse "Role revoked successfully"
// @Failure 400 {object} errors.ErrorResponse "ROLE_004 - User does not hold this role"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "USER_001 or ROLE_001 - User or role not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/roles/{role} [delete]
func (h *AdminHandler) RevokeRole(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	roleName := c.Param("role")
	if roleName == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Role name is required"))
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.userService.RevokeRole(userID, roleName, adminID); err != nil {
		switch err {
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrUnknownRole:
			return SendError(c, errors.RoleNotFound)
		case services.ErrRoleNotAssigned:
			return SendError(c, errors.RoleAssigned, errors.WithDetails("User does not hold this role"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Role revoked successfully",
	})
}

// ListRoles lists all configured roles
// @Summary List roles (admin)
// @Description Admin endpoint to list all roles with their permissions
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.RolesListResponse} "Roles retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/roles [get]
func (h *AdminHandler) ListRoles(c echo.Context) error {
	roles, err := h.userService.ListRoles()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RolesListResponse{Roles: roles},
	})
}

// ListPermissions lists all configured permissions
// @Summary List permissions (admin)
// @Description Admin endpoint to list all permissions
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.PermissionsListResponse} "Permissions retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/permissions [get]
func (h *AdminHandler) ListPermissions(c echo.Context) error {
	permissions, err := h.userService.ListPermissions()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.PermissionsListResponse{Permissions: permissions},
	})
}

// GetUserActivity retrieves audit logs for one user
// @Summary Get user activity (admin)
// @Description Admin endpoint to list a user's audit trail with optional pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param offset query int false "Result offset"
// @Param limit query int false "Result limit" default(50)
// @Success 200 {object} SuccessResponse{data=dto.AuditLogsListResponse} "Activity retrieved successfully"
// @Failure 400 {object} errors.ErrorResponse "USER_004 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/activity [get]
func (h *AdminHandler) GetUserActivity(c echo.Context) error {
	userID, err := parseUserIDParam(c)
	if err != nil {
		return err
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
