package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/models"
	"cap-recommender/internal/services"
	"cap-recommender/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) newJSONContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "SecurePass123",
		FullName: "Asha Kulkarni",
	})

	registered := &models.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		FullName: "Asha Kulkarni",
		Roles: []models.Role{
			{ID: uuid.New(), Name: models.RoleUser, IsActive: true},
		},
		CreatedAt: time.Now(),
	}
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(registered, nil).
		Times(1)

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("asha@example.com", data["email"])
	s.Equal("Asha Kulkarni", data["full_name"])
	s.Contains(data["roles"], "user")
}

func (s *AuthHandlerSuite) TestRegister_DuplicateEmail() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "SecurePass123",
		FullName: "Asha Kulkarni",
	})

	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrUserAlreadyExists).
		Times(1)

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("USER_002", response.Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_MissingFieldsFailValidation() {
	c, _ := s.newJSONContext(http.MethodPost, "/auth/register", map[string]string{
		"email": "asha@example.com",
	})

	err := s.handler.Register(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestRegister_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/login", dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "SecurePass123",
	})

	tokens := &dto.TokenResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tokens, nil).
		Times(1)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TokenResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("access-token", response.AccessToken)
	s.Equal("Bearer", response.TokenType)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/login", dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials).
		Times(1)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("AUTH_002", response.Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_AccountLocked() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/login", dto.LoginRequest{
		Email:    "locked@example.com",
		Password: "SecurePass123",
	})

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAccountLocked).
		Times(1)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("AUTH_006", response.Error.Code)
}

func (s *AuthHandlerSuite) TestRefreshToken_Success() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": "valid-refresh-token",
	})

	tokens := &dto.TokenResponse{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	s.authService.EXPECT().
		RefreshTokens("valid-refresh-token", gomock.Any(), gomock.Any()).
		Return(tokens, nil).
		Times(1)

	err := s.handler.RefreshToken(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthHandlerSuite) TestRefreshToken_Invalid() {
	c, rec := s.newJSONContext(http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": "expired-token",
	})

	s.authService.EXPECT().
		RefreshTokens("expired-token", gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidRefreshToken).
		Times(1)

	err := s.handler.RefreshToken(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerSuite) TestLogout_Success() {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-access-token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.authService.EXPECT().
		Logout("some-access-token", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthHandlerSuite) TestLogout_MissingToken() {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerSuite) TestLogout_ServiceErrorStillSucceeds() {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-access-token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.authService.EXPECT().
		Logout("some-access-token", gomock.Any(), gomock.Any()).
		Return(services.ErrInvalidRefreshToken).
		Times(1)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
