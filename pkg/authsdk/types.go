package authsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response. Client code should
// use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is a machine-readable code (e.g., "invalid_request", "invalid_token")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`

	// Role must name an existing role (e.g., "Doctor")
	Role string `json:"role"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is the body of POST /v1/auth/refresh-token and
// POST /v1/auth/revoke-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned by register, login and refresh-token.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// AccessToken is the HS256 signed JWT used as a bearer token
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is the opaque value traded at /v1/auth/refresh-token
	RefreshToken string `json:"refresh_token"`

	RefreshTokenExpiration time.Time `json:"refresh_token_expiration"`

	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// ============================================================================
// User Types
// ============================================================================

// ClaimInfo is a single (type, value) pair carried by the access token.
type ClaimInfo struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// MeResponse describes the principal behind the presented access token.
type MeResponse struct {
	Subject   string      `json:"sub"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Roles     []string    `json:"roles"`
	Claims    []ClaimInfo `json:"claims"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// ============================================================================
// Role Types
// ============================================================================

type RoleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the per-dependency status reported by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
