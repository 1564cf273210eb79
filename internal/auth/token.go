// Package auth loads the CLI session token and inspects it locally so an
// expired login is reported before any API round trip.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNotLoggedIn is returned when no session token or API key is available,
	// or the API rejected the one that was sent.
	ErrNotLoggedIn = errors.New(`Login required: use the "balena login" command to login`)

	// ErrSessionExpired is returned for a session JWT whose exp claim has passed.
	ErrSessionExpired = errors.New(`session expired: use the "balena login" command to login again`)
)

// tokenFile is the name of the session token file inside the data directory.
const tokenFile = "token"

// Kind distinguishes session JWTs from opaque API keys.
type Kind int

const (
	KindAPIKey Kind = iota
	KindJWT
)

// Token is a credential ready to be sent as a Bearer token.
type Token struct {
	Raw  string
	Kind Kind

	// Populated for KindJWT only.
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

type sessionClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Load returns the credential to use. A non-empty apiKey wins; otherwise the
// session token is read from <dataDir>/token.
func Load(dataDir, apiKey string) (*Token, error) {
	if key := strings.TrimSpace(apiKey); key != "" {
		return Parse(key)
	}

	b, err := os.ReadFile(filepath.Join(dataDir, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	raw := strings.TrimSpace(string(b))
	if raw == "" {
		return nil, ErrNotLoggedIn
	}
	return Parse(raw)
}

// Parse classifies raw. Anything that decodes as a JWT is read without
// signature verification (the API verifies it); everything else is an API key.
func Parse(raw string) (*Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNotLoggedIn
	}

	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return &Token{Raw: raw, Kind: KindAPIKey}, nil
	}

	t := &Token{
		Raw:      raw,
		Kind:     KindJWT,
		UserID:   claims.UserID,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		t.ExpiresAt = claims.ExpiresAt.Time
	}
	return t, nil
}

// Validate reports ErrSessionExpired for a JWT past its expiry at now.
// API keys and JWTs without exp are always valid.
func (t *Token) Validate(now time.Time) error {
	if t.Kind != KindJWT || t.ExpiresAt.IsZero() {
		return nil
	}
	if !now.Before(t.ExpiresAt) {
		return ErrSessionExpired
	}
	return nil
}
