package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(GrievanceNotFound, "trace-123")

	assert.Equal(t, "GRIEVANCE_001", resp.Error.Code)
	assert.Equal(t, "Grievance not found", resp.Error.Message)
	assert.Equal(t, "trace-123", resp.Error.TraceID)
	assert.Empty(t, resp.Error.Details)
}

func TestNewErrorResponse_Options(t *testing.T) {
	resp := NewErrorResponse(ValidationGeneral, "trace-456",
		WithDetails("category: must be one of the known categories"),
		WithMessage("Submission rejected"))

	assert.Equal(t, "Submission rejected", resp.Error.Message)
	require.Len(t, resp.Error.Details, 1)
	assert.Contains(t, resp.Error.Details[0], "category")
}

func TestNewValidationError(t *testing.T) {
	resp := NewValidationError(map[string]string{"description": "too short"}, "trace-789")

	assert.Equal(t, string(ValidationGeneral), resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "description: too short", resp.Error.Details[0])
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ReportInvalidField, http.StatusBadRequest},
		{AuthInvalidCredentials, http.StatusUnauthorized},
		{AuthMissingToken, http.StatusUnauthorized},
		{GrievanceAccessDenied, http.StatusForbidden},
		{AuthAccountLocked, http.StatusForbidden},
		{GrievanceNotFound, http.StatusNotFound},
		{AuthEmailAlreadyRegistered, http.StatusUnprocessableEntity},
		{GrievanceInvalidCategory, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponse_Classification(t *testing.T) {
	client := NewErrorResponse(GrievanceNotFound, "t")
	assert.True(t, client.IsClientError())
	assert.False(t, client.IsServerError())

	server := NewErrorResponse(SystemDatabaseError, "t")
	assert.True(t, server.IsServerError())
	assert.False(t, server.IsClientError())
}

func TestErrorResponse_ToJSON(t *testing.T) {
	data, err := NewErrorResponse(GrievanceNotFound, "trace-1").ToJSON()
	require.NoError(t, err)

	var decoded ErrorResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "GRIEVANCE_001", decoded.Error.Code)
}

func TestGetErrorMessage_Unknown(t *testing.T) {
	assert.Equal(t, "An unknown error occurred", GetErrorMessage(ErrorCode("NOPE")))
}
