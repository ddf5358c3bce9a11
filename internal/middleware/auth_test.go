package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cap-recommender/internal/config"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories/repository_mocks"
	"cap-recommender/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	tokenService             services.TokenServiceInterface
	mockBlacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	mockRoleRepo             *repository_mocks.MockRoleRepositoryInterface
	e                        *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.mockBlacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.mockRoleRepo = repository_mocks.NewMockRoleRepositoryInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(accessDuration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  accessDuration,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}

	return services.NewTokenService(jwtConfig)
}

func (s *AuthMiddlewareSuite) createTestUser(roleNames ...string) *models.User {
	roles := make([]models.Role, 0, len(roleNames))
	for _, name := range roleNames {
		roles = append(roles, models.Role{ID: uuid.New(), Name: name, IsActive: true})
	}

	return &models.User{
		ID:       uuid.New(),
		Email:    "asha.kulkarni@example.com",
		FullName: "Asha Kulkarni",
		Roles:    roles,
	}
}

func (s *AuthMiddlewareSuite) okHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := s.createTestUser(models.RoleUser)

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, nil)

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		s.Equal([]string{models.RoleUser}, c.Get("user_roles"))
		s.Equal(false, c.Get("is_admin"))
		s.NotEmpty(c.Get("token_jti"))

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_AdminRolesSetAdminFlag() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := s.createTestUser(models.RoleUser, models.RoleAdmin)

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, nil)

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(true, c.Get("is_admin"))
		s.ElementsMatch([]string{models.RoleUser, models.RoleAdmin}, c.Get("user_roles"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	// No Authorization header
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	// Auth middleware uses SendError which sends response and returns nil
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "InvalidToken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService(1 * time.Millisecond)
	shortMiddleware := RequireAuth(shortTokenService, s.mockBlacklistedTokenRepo)

	user := s.createTestUser(models.RoleUser)

	token, _, err := shortTokenService.GenerateAccessToken(user)
	s.NoError(err)

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	handler := shortMiddleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	tokenService1 := s.createTokenService(24 * time.Hour)
	tokenService2 := s.createTokenService(24 * time.Hour)

	user := s.createTestUser(models.RoleUser)

	// Generate token with first service, validate with second
	token, _, err := tokenService1.GenerateAccessToken(user)
	s.NoError(err)

	middleware2 := RequireAuth(tokenService2, s.mockBlacklistedTokenRepo)
	handler := middleware2(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BlacklistedToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := s.createTestUser(models.RoleUser)

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	s.mockBlacklistedTokenRepo.EXPECT().
		GetByJTI(gomock.Any()).
		Return(&models.BlacklistedToken{UserID: user.ID}, nil)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_AuthorizedWithCorrectRole() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleAdmin})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_ForbiddenWithoutRole() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleUser})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_MissingRolesInContext() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// No roles set in context

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_MatchesAnyListedRole() {
	middleware := RequireRole(models.RoleAdmin, models.RoleModerator)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/moderation", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleUser, models.RoleModerator})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_AllowsSuperAdmin() {
	middleware := RequireAdmin()

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleSuperAdmin})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequirePermission_Granted() {
	middleware := RequirePermission(s.mockRoleRepo, models.PermissionWriteColleges)

	s.mockRoleRepo.EXPECT().
		GetPermissionsForRoles([]string{models.RoleModerator}).
		Return([]string{models.PermissionReadColleges, models.PermissionWriteColleges}, nil)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodPost, "/admin/data", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleModerator})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequirePermission_WildcardGrant() {
	middleware := RequirePermission(s.mockRoleRepo, models.PermissionDeleteUsers)

	s.mockRoleRepo.EXPECT().
		GetPermissionsForRoles([]string{models.RoleSuperAdmin}).
		Return([]string{models.PermissionAdminAll}, nil)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/x", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleSuperAdmin})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequirePermission_Denied() {
	middleware := RequirePermission(s.mockRoleRepo, models.PermissionDeleteColleges)

	s.mockRoleRepo.EXPECT().
		GetPermissionsForRoles([]string{models.RoleUser}).
		Return([]string{models.PermissionReadColleges}, nil)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/admin/data", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_roles", []string{models.RoleUser})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequirePermission_MissingRolesInContext() {
	middleware := RequirePermission(s.mockRoleRepo, models.PermissionReadUsers)

	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
