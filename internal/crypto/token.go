// Package crypto signs and verifies the screen-state tokens that carry the
// generator screen between stateless HTTP calls.
package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	issuer   = "passgen"
	audience = "passgen-screen"
	keyInfo  = "passgen screen state v1"
)

var (
	ErrInvalidToken = errors.New("invalid or expired state token")
	ErrEmptySecret  = errors.New("state secret must not be empty")
)

// StateClaims carries the character class toggles. The generated password is
// never put in a token, so neither is the result panel: a restored screen
// always has the panel hidden.
type StateClaims struct {
	jwt.RegisteredClaims
	Classes model.CharacterClasses `json:"classes"`
}

// Signer issues and validates state tokens with an HS256 key derived from a
// configured secret.
type Signer struct {
	key    []byte
	expiry time.Duration
}

// NewSigner derives the signing key from secret with HKDF-SHA256.
func NewSigner(secret string, expiry time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("deriving signing key: %w", err)
	}

	return &Signer{key: key, expiry: expiry}, nil
}

// Sign creates a signed token for the given screen state.
func (s *Signer) Sign(state model.ScreenState) (string, error) {
	now := time.Now()
	claims := StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Classes: state.Classes,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify parses and validates a token, returning the screen state it carries.
// The returned state has no password and a hidden result panel.
func (s *Signer) Verify(tokenString string) (model.ScreenState, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StateClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.key, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		return model.ScreenState{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StateClaims)
	if !ok || !token.Valid {
		return model.ScreenState{}, ErrInvalidToken
	}

	return model.ScreenState{Classes: claims.Classes}, nil
}
