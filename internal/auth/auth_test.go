package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	signed, err := tokens.Issue("user-1")
	require.NoError(t, err)

	userID, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokensRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokensRejectsExpired(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	issued := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	signed, err := tokens.Issue("user-1")
	require.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = tokens.Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokensRejectsGarbage(t *testing.T) {
	_, err := NewTokens("secret", time.Hour).Verify("not.a.jwt")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def", "abc.def", false},
		{"bearer  xyz ", "xyz", false},
		{"", "", true},
		{"Basic dXNlcg==", "", true},
		{"Bearer", "", true},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if tt.wantErr {
			assert.Error(t, err, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, CheckPassword(hash, "hunter2"))
	assert.True(t, errors.Is(CheckPassword(hash, "hunter3"), ErrPasswordMismatch))
}
