package domain

import "time"

// RefreshToken models the stored refresh token record in the DB. Token is the
// opaque value handed to the client; it is unique across all users.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresOn time.Time
	CreatedOn time.Time
	RevokedOn *time.Time // set once, never cleared
}

// IsExpiredAt reports whether the token has reached its expiry at now.
func (t RefreshToken) IsExpiredAt(now time.Time) bool {
	return !now.Before(t.ExpiresOn)
}

// IsActiveAt reports whether the token can still be used at now.
func (t RefreshToken) IsActiveAt(now time.Time) bool {
	return !t.Revoked() && !t.IsExpiredAt(now)
}

func (t RefreshToken) Revoked() bool   { return t.RevokedOn != nil }
func (t RefreshToken) IsExpired() bool { return t.IsExpiredAt(time.Now()) }
func (t RefreshToken) IsActive() bool  { return t.IsActiveAt(time.Now()) }

// AuthResponse is the outcome of Login, Register and RefreshToken. A failed
// attempt carries Success=false and a human-readable Message only.
type AuthResponse struct {
	Success                bool
	Message                string
	AccessToken            string
	RefreshToken           string
	RefreshTokenExpiration time.Time
	Username               string
	Email                  string
	Roles                  []string
}
