package services

import (
	"testing"
	"time"

	"grievance-redressal/internal/config"
	"grievance-redressal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, duration time.Duration) TokenServiceInterface {
	t.Helper()

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	return NewTokenService(&config.JWTConfig{
		AccessTokenDuration: duration,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "grievance-api",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "student@university.edu",
		Name:  "Test Student",
		Role:  models.RoleStudent,
	}
}

func TestGenerateAccessToken(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)
	user := testUser()

	token, expiresAt, err := ts.GenerateAccessToken(user)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestGenerateAccessToken_NilUser(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)

	_, _, err := ts.GenerateAccessToken(nil)
	assert.Error(t, err)
}

func TestValidateAccessToken_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)
	user := testUser()

	token, _, err := ts.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := ts.ValidateAccessToken(token)

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "grievance-api", claims.Issuer)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	ts := newTestTokenService(t, -time.Minute)
	user := testUser()

	token, _, err := ts.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = ts.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessToken_WrongKey(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)

	token, _, err := ts.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	issuer := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "some-other-service",
	})
	validator := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "grievance-api",
	})

	token, _, err := issuer.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = validator.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidIssuer)
}

func TestValidateAccessToken_Empty(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)

	_, err := ts.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)

	_, err := ts.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing scheme", "abc.def.ghi", "", true},
		{"empty token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ts.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestGetTokenExpiry(t *testing.T) {
	ts := newTestTokenService(t, time.Hour)

	token, expiresAt, err := ts.GenerateAccessToken(testUser())
	require.NoError(t, err)

	expiry, err := ts.GetTokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, expiresAt, expiry, time.Second)
}
