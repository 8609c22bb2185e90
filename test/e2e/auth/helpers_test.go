//go:build e2e

package auth_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testImageName = "clinic-auth-test:latest"

	testPassword = "S3cure!pass"
	signingKey   = "e2e-signing-key-0123456789abcdef0123"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"AUTH_ISSUER":               "clinic-auth",
		"AUTH_AUDIENCE":             "clinic-api",
		"AUTH_SIGNING_KEY":          signingKey,
		"AUTH_ACCESS_TOKEN_MINUTES": "15",
		"AUTH_REFRESH_TOKEN_DAYS":   "7",
		"AUTH_DATABASE_FILE":        "/data/auth.db",
		"AUTH_PEPPER_FILE":          "/data/pepper",
		"ENV":                       "test",
		"LOG_LEVEL":                 "info",
		"LOG_FORMAT":                "json",
	}
}

// setupAuthContainer starts the auth service with relaxed rate limits and
// returns the base URL.
func setupAuthContainer(t *testing.T) string {
	t.Helper()

	env := baseEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupAuthContainerWithDefaultRateLimits keeps the production limits so rate
// limiting itself can be tested.
func setupAuthContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/readyz").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// registerUser creates an account with the given role and returns its tokens.
func registerUser(t *testing.T, client *authsdk.SDKClient, username, role string) *authsdk.AuthResponse {
	t.Helper()

	resp, err := client.Register(t.Context(), authsdk.RegisterRequest{
		FirstName: "E2E",
		LastName:  "User",
		Username:  username,
		Email:     username + "@clinic.test",
		Password:  testPassword,
		Role:      role,
	})
	require.NoError(t, err, "register %s should succeed", username)
	assertAuthResponse(t, resp)

	return resp
}

func assertAuthResponse(t *testing.T, resp *authsdk.AuthResponse) {
	t.Helper()
	require.NotNil(t, resp)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, resp.RefreshToken, "Refresh token should not be empty")
	require.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.Roles)
}

// assertAPIError checks that err is an APIError with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) *authsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
