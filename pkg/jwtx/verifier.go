package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the principal if it's legit.
type Verifier interface {
	Verify(token string) (Principal, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates tokens produced by HS256Signer. Algorithm, issuer,
// audience and expiry are all enforced, exp is mandatory and no clock leeway
// is granted.
type HS256Verifier struct {
	key    []byte
	parser *jwt.Parser
}

func NewHS256Verifier(secret []byte, issuer, audience string) (*HS256Verifier, error) {
	if len(secret) < MinHS256KeyLength {
		return nil, ErrWeakKey
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify validates the JWT string and returns its principal.
func (v *HS256Verifier) Verify(tokenStr string) (Principal, error) {
	claims := jwt.MapClaims{}

	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.key, nil
	})
	if err != nil {
		return Principal{}, mapParseError(err)
	}
	if !token.Valid {
		return Principal{}, ErrInvalidClaim
	}

	p := newPrincipal(claims)
	if p.Subject == "" {
		return Principal{}, fmt.Errorf("%w: missing sub", ErrInvalidClaim)
	}
	return p, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudience
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
