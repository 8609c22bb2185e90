//go:build e2e

package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit hammers login from one address until the strict limit
// answers 429.
func TestLoginRateLimit(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainerWithDefaultRateLimits(t))
	req := authsdk.LoginRequest{Email: "ghost@clinic.test", Password: testPassword}

	limited := false
	for range 20 {
		_, err := client.Login(t.Context(), req)
		require.Error(t, err)

		var apiErr *authsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "login should eventually be rate limited")
}
