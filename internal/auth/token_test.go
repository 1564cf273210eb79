package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedSession returns an HS256 session token expiring at exp.
func signedSession(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := sessionClaims{
		UserID:   42,
		Username: "gh_user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func writeToken(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte(contents), 0o600))
	return dir
}

func TestLoad_NoToken(t *testing.T) {
	_, err := Load(t.TempDir(), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoad_EmptyTokenFile(t *testing.T) {
	_, err := Load(writeToken(t, "  \n"), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoad_SessionToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	dir := writeToken(t, signedSession(t, exp)+"\n")

	tok, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, KindJWT, tok.Kind)
	assert.Equal(t, int64(42), tok.UserID)
	assert.Equal(t, "gh_user", tok.Username)
	assert.True(t, exp.Equal(tok.ExpiresAt))
	assert.NoError(t, tok.Validate(time.Now()))
}

func TestLoad_APIKeyWins(t *testing.T) {
	dir := writeToken(t, signedSession(t, time.Now().Add(time.Hour)))

	tok, err := Load(dir, "  abcdef0123456789 ")
	require.NoError(t, err)
	assert.Equal(t, KindAPIKey, tok.Kind)
	assert.Equal(t, "abcdef0123456789", tok.Raw)
}

func TestValidate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"api_key", "abcdef0123456789", nil},
		{"fresh_session", signedSession(t, now.Add(time.Hour)), nil},
		{"expired_session", signedSession(t, now.Add(-time.Hour)), ErrSessionExpired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := Parse(tc.raw)
			require.NoError(t, err)
			if tc.wantErr == nil {
				assert.NoError(t, tok.Validate(now))
			} else {
				assert.ErrorIs(t, tok.Validate(now), tc.wantErr)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
