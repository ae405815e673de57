package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSecurityHeaders(t *testing.T) {
	suite.Run(t, new(SecurityHeadersSuite))
}

type SecurityHeadersSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *SecurityHeadersSuite) SetupTest() {
	s.e = echo.New()
}

func (s *SecurityHeadersSuite) TestHeadersAreSet() {
	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Equal("DENY", rec.Header().Get("X-Frame-Options"))
	s.Equal("default-src 'self'", rec.Header().Get("Content-Security-Policy"))
	s.Contains(rec.Header().Get("Cache-Control"), "no-store")
	s.NotEmpty(rec.Header().Get("Strict-Transport-Security"))
}
