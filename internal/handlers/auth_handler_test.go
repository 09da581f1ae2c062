package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerSuite defines the test suite for AuthHandler
type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validator.New()}
}

// TearDownTest runs after each test in the suite
func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAuthHandlerSuite runs the test suite
func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) createJSONContext(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *AuthHandlerSuite) TestRegister() {
	s.mockService.EXPECT().
		Register(gomock.Any()).
		DoAndReturn(func(req *dto.RegisterRequest) (*models.User, error) {
			s.Equal("sam@example.com", req.Email)
			return &models.User{
				ID:          uuid.New(),
				Email:       req.Email,
				DisplayName: req.DisplayName,
			}, nil
		})

	c, rec := s.createJSONContext("/api/v1/auth/register",
		`{"email":"sam@example.com","password":"CorrectHorse42","display_name":"Sam"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "sam@example.com")
}

func (s *AuthHandlerSuite) TestRegister_EmailTaken() {
	s.mockService.EXPECT().
		Register(gomock.Any()).
		Return(nil, repositories.ErrUserAlreadyExists)

	c, rec := s.createJSONContext("/api/v1/auth/register",
		`{"email":"sam@example.com","password":"CorrectHorse42","display_name":"Sam"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "USER_002")
}

func (s *AuthHandlerSuite) TestRegister_InvalidEmail() {
	c, rec := s.createJSONContext("/api/v1/auth/register",
		`{"email":"not-an-email","password":"CorrectHorse42","display_name":"Sam"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AuthHandlerSuite) TestRegister_WeakPassword() {
	s.mockService.EXPECT().
		Register(gomock.Any()).
		Return(nil, services.ErrPasswordNoNumber)

	c, rec := s.createJSONContext("/api/v1/auth/register",
		`{"email":"sam@example.com","password":"NoDigitsInHere!!","display_name":"Sam"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AuthHandlerSuite) TestLogin() {
	pair := &dto.TokenPair{
		AccessToken:      "access-token",
		AccessExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshToken:     "refresh-token",
		RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	user := &models.User{ID: uuid.New(), Email: "sam@example.com", DisplayName: "Sam"}

	s.mockService.EXPECT().
		Login("sam@example.com", "CorrectHorse42").
		Return(pair, user, nil)

	c, rec := s.createJSONContext("/api/v1/auth/login",
		`{"email":"sam@example.com","password":"CorrectHorse42"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "access-token")
	s.Contains(rec.Body.String(), "refresh-token")
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.mockService.EXPECT().
		Login("sam@example.com", "wrong").
		Return(nil, nil, services.ErrInvalidCredentials)

	c, rec := s.createJSONContext("/api/v1/auth/login",
		`{"email":"sam@example.com","password":"wrong"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerSuite) TestRefresh() {
	pair := &dto.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	s.mockService.EXPECT().
		Refresh("old-refresh").
		Return(pair, nil)

	c, rec := s.createJSONContext("/api/v1/auth/refresh",
		`{"refresh_token":"old-refresh"}`)

	s.NoError(s.handler.Refresh(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "new-access")
}

func (s *AuthHandlerSuite) TestRefresh_InvalidToken() {
	s.mockService.EXPECT().
		Refresh("garbage").
		Return(nil, services.ErrRefreshTokenInvalid)

	c, rec := s.createJSONContext("/api/v1/auth/refresh",
		`{"refresh_token":"garbage"}`)

	s.NoError(s.handler.Refresh(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthHandlerSuite) TestRefresh_ExpiredToken() {
	s.mockService.EXPECT().
		Refresh("stale").
		Return(nil, services.ErrExpiredToken)

	c, rec := s.createJSONContext("/api/v1/auth/refresh",
		`{"refresh_token":"stale"}`)

	s.NoError(s.handler.Refresh(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthHandlerSuite) TestLogout() {
	s.mockService.EXPECT().Logout("refresh-token").Return(nil)

	c, rec := s.createJSONContext("/api/v1/auth/logout",
		`{"refresh_token":"refresh-token"}`)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "logged out")
}

func (s *AuthHandlerSuite) TestLogoutAll() {
	userID := uuid.New()
	s.mockService.EXPECT().LogoutAll(userID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout-all", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", userID)

	s.NoError(s.handler.LogoutAll(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "all sessions revoked")
}

func (s *AuthHandlerSuite) TestLogoutAll_Unauthenticated() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout-all", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.LogoutAll(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}
