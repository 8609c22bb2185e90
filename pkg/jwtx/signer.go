package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256KeyLength is the shortest shared secret accepted for HS256. Anything
// shorter is rejected when the signer is built, never at signing time.
const MinHS256KeyLength = 32

// Default token lifetimes used when configuration leaves them unset in tests.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrWeakKey = errors.New("jwtx: signing key must be at least 32 bytes")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(claims []Claim, issuer, audience string, ttl time.Duration) (string, error)
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	key []byte
	now func() time.Time
}

// NewHS256Signer copies the secret and validates its length.
func NewHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinHS256KeyLength {
		return nil, ErrWeakKey
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Signer{key: key, now: time.Now}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes the claim list and turns it into a compact signed JWT with
// exp = now + ttl.
func (s *HS256Signer) Sign(claims []Claim, issuer, audience string, ttl time.Duration) (string, error) {
	body := NewMapClaims(claims, issuer, audience, ttl, s.now().UTC())

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, body)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Sign is a one-shot helper around NewHS256Signer.
func Sign(claims []Claim, issuer, audience string, secret []byte, ttl time.Duration) (string, error) {
	s, err := NewHS256Signer(secret)
	if err != nil {
		return "", err
	}
	return s.Sign(claims, issuer, audience, ttl)
}
