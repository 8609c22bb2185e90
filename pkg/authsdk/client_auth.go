package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Register creates an account and returns its first token pair.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password. Repeated logins return the
// same refresh token while it stays active.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/v1/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken trades refreshToken for a new token pair.
func (c *SDKClient) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.postJSON(ctx, "/v1/auth/refresh-token", RefreshTokenRequest{RefreshToken: refreshToken}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeToken revokes refreshToken. Revoking the same token twice fails.
func (c *SDKClient) RevokeToken(ctx context.Context, refreshToken string) error {
	body, err := json.Marshal(RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/revoke-token", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *SDKClient) postJSON(ctx context.Context, path string, in, out any, expectedStatus int) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expectedStatus)
}
