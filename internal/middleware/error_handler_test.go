package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"grievance-redressal/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestErrorHandler(t *testing.T) {
	suite.Run(t, new(ErrorHandlerSuite))
}

type ErrorHandlerSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *ErrorHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.HTTPErrorHandler = CustomHTTPErrorHandler
}

func (s *ErrorHandlerSuite) TestEchoHTTPError() {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-1")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.GrievanceNotFound), resp.Error.Code)
	s.Equal("trace-1", resp.Error.TraceID)
}

func (s *ErrorHandlerSuite) TestUnknownErrorBecomesSystemError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-2")

	CustomHTTPErrorHandler(fmt.Errorf("unexpected failure"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
}

func (s *ErrorHandlerSuite) TestValidationErrors() {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-3")

	err := validator.New().Struct(payload{Email: "not-an-email"})
	s.Error(err)

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.ValidationGeneral), resp.Error.Code)
}

func (s *ErrorHandlerSuite) TestCommittedResponseUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(c.String(http.StatusOK, "already sent"))

	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("already sent", rec.Body.String())
}
