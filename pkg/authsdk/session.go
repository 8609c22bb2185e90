package authsdk

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Session represents an authenticated session with automatic token refresh.
// All Session methods refresh an expired access token before the call.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	roles        []string
}

// refresh this long before the access token actually expires
const expiryBuffer = 30 * time.Second

func newSession(client *SDKClient, resp *AuthResponse) *Session {
	s := &Session{client: client}
	s.apply(resp)
	return s
}

func (s *Session) apply(resp *AuthResponse) {
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn)*time.Second - expiryBuffer)
	s.roles = slices.Clone(resp.Roles)
}

// Revoke revokes the current refresh token, ending this session.
func (s *Session) Revoke(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		return fmt.Errorf("no refresh token to revoke")
	}

	return s.client.RevokeToken(ctx, refreshToken)
}

// getValidToken returns a valid access token, rotating the refresh token when
// the access token has expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// another goroutine may have refreshed while we waited
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if s.refreshToken == "" {
		return "", fmt.Errorf("access token expired and no refresh token available")
	}

	resp, err := s.client.RefreshToken(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	s.apply(resp)

	return s.accessToken, nil
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Roles returns a copy of the roles granted at the last login or refresh.
func (s *Session) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.roles)
}

// HasRole reports whether the session was granted role.
func (s *Session) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.roles, role)
}

// checkRoles fails fast when none of the required roles were granted. The
// server enforces the same rule.
func (s *Session) checkRoles(anyOf ...string) error {
	if len(anyOf) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, role := range anyOf {
		if slices.Contains(s.roles, role) {
			return nil
		}
	}
	return fmt.Errorf("session lacks any of the roles: %s", strings.Join(anyOf, ", "))
}
