package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	ps := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "Students123", nil},
		{"minimum length", "abcdefg1", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "abc1", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 72) + "1x", ErrPasswordTooLong},
		{"no letter", "12345678", ErrPasswordNoLetter},
		{"no number", "abcdefgh", ErrPasswordNoNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ps.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashPassword_AndCompare(t *testing.T) {
	ps := NewPasswordService()

	hash, err := ps.HashPassword("Students123")
	require.NoError(t, err)
	assert.NotEqual(t, "Students123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, ps.ComparePassword("Students123", hash))
	assert.False(t, ps.ComparePassword("students123", hash))
	assert.False(t, ps.ComparePassword("", hash))
}

func TestHashPassword_RejectsInvalid(t *testing.T) {
	ps := NewPasswordService()

	_, err := ps.HashPassword("short1")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHashPasswordWithoutValidation(t *testing.T) {
	ps := NewPasswordService()

	// Passwords that fail normal validation still hash
	hash, err := ps.HashPasswordWithoutValidation("seed")
	require.NoError(t, err)
	assert.True(t, ps.ComparePassword("seed", hash))

	_, err = ps.HashPasswordWithoutValidation("")
	assert.ErrorIs(t, err, ErrPasswordEmpty)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	ps := NewPasswordService()

	first, err := ps.HashPassword("Students123")
	require.NoError(t, err)
	second, err := ps.HashPassword("Students123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
