package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the clinic authentication service. It provides
// access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthenticateWithPassword logs in and returns a session that refreshes its
// access token on demand.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// AuthenticateWithRefreshToken creates a session by rotating an existing
// refresh token. The presented token is revoked by the server.
func (c *SDKClient) AuthenticateWithRefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	resp, err := c.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// NewSessionFromResponse wraps a response obtained earlier (e.g. from Register).
func (c *SDKClient) NewSessionFromResponse(resp *AuthResponse) *Session {
	return newSession(c, resp)
}
