package token

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
)

// DefaultDuration is the fixed lifetime of issued bearer tokens.
const DefaultDuration = time.Hour

// Claims carries the decoded identity of an authenticated request.
type Claims struct {
	UserID  int64  `json:"user_id"`
	TokenID string `json:"token_id"`
}

// Maker issues and verifies v2.local PASETO bearer tokens.
type Maker struct {
	instance *paseto.V2
	key      []byte
	duration time.Duration
}

// NewMaker builds a token maker from the configured signing secret. The
// secret is stretched with SHA-256 to the 32-byte symmetric key the
// v2.local scheme requires, so any secret length is accepted.
func NewMaker(secret string, duration time.Duration) *Maker {
	key := sha256.Sum256([]byte(secret))
	return &Maker{
		instance: paseto.NewV2(),
		key:      key[:],
		duration: duration,
	}
}

// GenerateToken issues a token embedding the user id as the subject
// claim, expiring after the maker's duration.
func (m *Maker) GenerateToken(userID int64) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		Jti:        uuid.NewString(),
		Subject:    strconv.FormatInt(userID, 10),
		IssuedAt:   now,
		Expiration: now.Add(m.duration),
		NotBefore:  now,
	}

	return m.instance.Encrypt(m.key, token, nil)
}

// ValidateToken checks the token's authenticity and expiry and returns
// the embedded claims.
func (m *Maker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.instance.Decrypt(tokenString, m.key, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := strconv.ParseInt(token.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	return &Claims{UserID: userID, TokenID: token.Jti}, nil
}
