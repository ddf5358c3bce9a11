package middleware

import (
	"cap-recommender/internal/errors"
	"cap-recommender/internal/handlers"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT token
// and checks that the token has not been blacklisted (e.g., after logout)
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			blacklistedToken, err := blacklistedTokenRepo.GetByJTI(claims.ID)
			if err == nil && blacklistedToken != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			isAdmin := claims.HasRole(models.RoleAdmin) || claims.HasRole(models.RoleSuperAdmin)

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("user_roles", claims.Roles)
			c.Set("token_jti", claims.ID)
			c.Set("is_admin", isAdmin)

			user := map[string]interface{}{
				"id":    userID,
				"email": claims.Email,
				"roles": claims.Roles,
			}
			c.Set("user", user)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires any of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles, ok := c.Get("user_roles").([]string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User roles not found in token"))
			}

			for _, required := range requiredRoles {
				for _, held := range userRoles {
					if held == required {
						return next(c)
					}
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequirePermission creates a middleware that requires a named permission.
// Permissions are resolved from the token's roles at request time, so a role
// change takes effect without re-issuing tokens.
func RequirePermission(roleRepo repositories.RoleRepositoryInterface, required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles, ok := c.Get("user_roles").([]string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User roles not found in token"))
			}

			granted, err := roleRepo.GetPermissionsForRoles(userRoles)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}

			if !models.HasPermission(granted, required) {
				return handlers.SendError(c, errors.AuthInsufficientPermission,
					errors.WithDetails("Missing permission: "+required))
			}

			return next(c)
		}
	}
}

// RequireAdmin is a convenience middleware that requires an admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin, models.RoleSuperAdmin)
}
