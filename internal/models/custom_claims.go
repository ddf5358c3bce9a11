package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access and refresh tokens. Roles is
// the full role slug list so permission checks do not need a DB round trip on
// every request.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string   `json:"user_id"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	TokenType string   `json:"token_type"`
}

// HasRole reports whether the token carries the given role slug.
func (c *CustomClaims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the token carries an administrative role.
func (c *CustomClaims) IsAdmin() bool {
	return c.HasRole(RoleSuperAdmin) || c.HasRole(RoleAdmin)
}
