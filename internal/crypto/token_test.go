package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaultpass/passgen-go/internal/model"
)

func newTestSigner(t *testing.T, secret string, expiry time.Duration) *Signer {
	t.Helper()
	s, err := NewSigner(secret, expiry)
	if err != nil {
		t.Fatalf("NewSigner() unexpected error: %v", err)
	}
	return s
}

func TestNewSignerEmptySecret(t *testing.T) {
	if _, err := NewSigner("", time.Hour); err != ErrEmptySecret {
		t.Errorf("NewSigner(\"\") error = %v, want ErrEmptySecret", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	s := newTestSigner(t, "test-secret", time.Hour)
	state := model.ScreenState{
		Classes:   model.CharacterClasses{Uppercase: true, Symbols: true},
		Password:  "never-signed",
		Generated: true,
	}

	token, err := s.Sign(state)
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Sign() returned empty string")
	}

	got, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if got.Classes != state.Classes {
		t.Errorf("Verify() classes = %+v, want %+v", got.Classes, state.Classes)
	}
	if got.Generated {
		t.Error("Verify() restored a shown result panel without its password")
	}
	if got.Password != "" {
		t.Errorf("Verify() password = %q, want empty", got.Password)
	}
}

func TestVerifyInvalid(t *testing.T) {
	s := newTestSigner(t, "test-secret", time.Hour)
	if _, err := s.Verify("not-a-valid-token"); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := newTestSigner(t, "correct-secret", time.Hour).Sign(model.ScreenState{})
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}

	if _, err := newTestSigner(t, "wrong-secret", time.Hour).Verify(token); err == nil {
		t.Error("Verify() expected error for wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	s := newTestSigner(t, "test-secret", -time.Minute)
	token, err := s.Sign(model.ScreenState{})
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}

	if _, err := s.Verify(token); err == nil {
		t.Error("Verify() expected error for expired token")
	}
}

func TestVerifyRawSecretIsNotTheKey(t *testing.T) {
	secret := "test-secret"
	claims := StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := newTestSigner(t, secret, time.Hour).Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with the raw secret")
	}
}

func TestVerifyWrongIssuerAndAudience(t *testing.T) {
	s := newTestSigner(t, "test-secret", time.Hour)

	tests := []struct {
		name     string
		issuer   string
		audience string
	}{
		{name: "wrong issuer", issuer: "wrong-issuer", audience: audience},
		{name: "wrong audience", issuer: issuer, audience: "wrong-audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := StateClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    tt.issuer,
					Audience:  jwt.ClaimStrings{tt.audience},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					IssuedAt:  jwt.NewNumericDate(time.Now()),
				},
			}
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
			if err != nil {
				t.Fatalf("SignedString() unexpected error: %v", err)
			}

			if _, err := s.Verify(token); err == nil {
				t.Errorf("Verify() expected error for %s", tt.name)
			}
		})
	}
}
