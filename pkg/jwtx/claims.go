package jwtx

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim types placed in every access token. Anything else (user or role
// claims) is carried verbatim under its own type.
const (
	ClaimJTI        = "jti"
	ClaimSubject    = "sub"
	ClaimUniqueName = "unique_name"
	ClaimEmail      = "email"
	ClaimRole       = "role"
)

// Registered claims the signer owns. A caller supplied claim with one of
// these types is ignored so it can't override issuer, audience or lifetime.
var registered = map[string]struct{}{
	"iss": {},
	"aud": {},
	"exp": {},
	"iat": {},
	"nbf": {},
}

// Identity claims are single valued. Only the first occurrence is signed.
var identity = map[string]struct{}{
	ClaimJTI:        {},
	ClaimSubject:    {},
	ClaimUniqueName: {},
	ClaimEmail:      {},
}

// IsReserved reports whether typ is owned by the signer or names one of the
// identity claims, so it must not come from stored user or role claims.
func IsReserved(typ string) bool {
	_, reg := registered[typ]
	_, id := identity[typ]
	return reg || id
}

// Claim is a single (type, value) pair. Order in a claim list is preserved
// when signing, repeated types end up as a JSON array.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewMapClaims flattens a claim list into a jwt.MapClaims body alongside the
// registered iss/aud/iat/nbf/exp claims.
func NewMapClaims(
	claims []Claim,
	issuer, audience string,
	ttl time.Duration,
	now time.Time,
) jwt.MapClaims {
	out := make(jwt.MapClaims, len(claims)+5)

	for _, c := range claims {
		if _, ok := registered[c.Type]; ok || c.Type == "" {
			continue
		}
		if _, ok := identity[c.Type]; ok && out[c.Type] != nil {
			continue
		}

		switch existing := out[c.Type].(type) {
		case nil:
			out[c.Type] = c.Value
		case string:
			out[c.Type] = []string{existing, c.Value}
		case []string:
			out[c.Type] = append(existing, c.Value)
		}
	}

	out["iss"] = issuer
	out["aud"] = audience
	out["iat"] = now.Unix()
	out["nbf"] = now.Unix()
	out["exp"] = now.Add(ttl).Unix()

	return out
}

// claimsFromMap is the inverse of NewMapClaims for everything except the
// registered claims. The result is sorted by type then value so callers get a
// stable view regardless of JSON object ordering.
func claimsFromMap(m jwt.MapClaims) []Claim {
	out := make([]Claim, 0, len(m))
	for typ, raw := range m {
		if _, ok := registered[typ]; ok {
			continue
		}

		switch v := raw.(type) {
		case string:
			out = append(out, Claim{Type: typ, Value: v})
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, Claim{Type: typ, Value: s})
				}
			}
		}
	}

	slices.SortFunc(out, func(a, b Claim) int {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

// Principal is the verified view of an access token handed to downstream
// handlers.
type Principal struct {
	ID        string
	Subject   string
	Username  string
	Email     string
	Roles     []string
	Claims    []Claim
	ExpiresAt time.Time
}

// HasRole reports whether the principal carries a role claim named role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// Values returns every value carried under the claim type.
func (p Principal) Values(typ string) []string {
	var out []string
	for _, c := range p.Claims {
		if c.Type == typ {
			out = append(out, c.Value)
		}
	}
	return out
}

func newPrincipal(m jwt.MapClaims) Principal {
	claims := claimsFromMap(m)

	p := Principal{Claims: claims}
	for _, c := range claims {
		switch c.Type {
		case ClaimJTI:
			p.ID = c.Value
		case ClaimSubject:
			p.Subject = c.Value
		case ClaimUniqueName:
			p.Username = c.Value
		case ClaimEmail:
			p.Email = c.Value
		case ClaimRole:
			p.Roles = append(p.Roles, c.Value)
		}
	}

	if exp, err := m.GetExpirationTime(); err == nil && exp != nil {
		p.ExpiresAt = exp.Time
	}
	return p
}
