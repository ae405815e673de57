package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grievance-redressal/internal/config"
	"grievance-redressal/internal/models"
	"grievance-redressal/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	}

	s.tokenService = services.NewTokenService(jwtConfig)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) okHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService)

	user := &models.User{
		ID:    uuid.New(),
		Email: "student@university.edu",
		Role:  models.RoleStudent,
	}

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		s.Equal(user.Role, c.Get("user_role"))
		s.Equal(false, c.Get("is_admin"))
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

func (s *AuthMiddlewareSuite) TestRequireAuth_AdminTokenSetsIsAdmin() {
	middleware := RequireAuth(s.tokenService)

	admin := &models.User{
		ID:    uuid.New(),
		Email: "admin@university.edu",
		Role:  models.RoleAdmin,
	}

	token, _, err := s.tokenService.GenerateAccessToken(admin)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(true, c.Get("is_admin"))
		return c.NoContent(http.StatusOK)
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
	middleware := RequireAuth(s.tokenService)
	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	middleware := RequireAuth(s.tokenService)
	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "NotBearer token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidToken() {
	middleware := RequireAuth(s.tokenService)
	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	otherService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          otherPrivate,
		PublicKey:           otherPublic,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	})

	user := &models.User{ID: uuid.New(), Email: "student@university.edu", Role: models.RoleStudent}
	token, _, err := otherService.GenerateAccessToken(user)
	s.NoError(err)

	middleware := RequireAuth(s.tokenService)
	handler := middleware(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_AllowsAdmin() {
	handler := RequireAdmin()(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleAdmin)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_RejectsStudent() {
	handler := RequireAdmin()(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleStudent)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_MissingRole() {
	handler := RequireAdmin()(s.okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
