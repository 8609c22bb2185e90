//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginRefreshRevoke walks one account through its whole session
// lifecycle against the running service.
func TestRegisterLoginRefreshRevoke(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	ctx := t.Context()

	registered := registerUser(t, client, "drsmith", "Doctor")
	require.Equal(t, []string{"Doctor"}, registered.Roles)

	// Login reuses the active refresh token
	login, err := client.Login(ctx, authsdk.LoginRequest{Email: "drsmith@clinic.test", Password: testPassword})
	require.NoError(t, err)
	assertAuthResponse(t, login)
	require.Equal(t, registered.RefreshToken, login.RefreshToken)

	// Refresh rotates
	rotated, err := client.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assertAuthResponse(t, rotated)
	require.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	_, err = client.RefreshToken(ctx, login.RefreshToken)
	apiErr := assertAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidToken)
	require.Equal(t, "Invalid token", apiErr.Description)

	// Revoke ends the session for good
	require.NoError(t, client.RevokeToken(ctx, rotated.RefreshToken))

	err = client.RevokeToken(ctx, rotated.RefreshToken)
	assertAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeInvalidToken)

	_, err = client.RefreshToken(ctx, rotated.RefreshToken)
	assertAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidToken)

	// A new login after revocation mints a fresh token
	again, err := client.Login(ctx, authsdk.LoginRequest{Email: "drsmith@clinic.test", Password: testPassword})
	require.NoError(t, err)
	require.NotEqual(t, rotated.RefreshToken, again.RefreshToken)
}

func TestLoginFailures(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	registerUser(t, client, "reception", "Receptionist")

	for name, req := range map[string]authsdk.LoginRequest{
		"wrong password": {Email: "reception@clinic.test", Password: "Wrong!pass1"},
		"unknown email":  {Email: "ghost@clinic.test", Password: testPassword},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := client.Login(t.Context(), req)
			apiErr := assertAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidGrant)
			require.Equal(t, "Email or Password Incorrect", apiErr.Description)
		})
	}
}

func TestRegisterFailures(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	registerUser(t, client, "taken", "Patient")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := client.Register(t.Context(), authsdk.RegisterRequest{
			FirstName: "Dup",
			LastName:  "User",
			Username:  "another",
			Email:     "TAKEN@clinic.test",
			Password:  testPassword,
			Role:      "Patient",
		})
		assertAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeInvalidRequest)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := client.Register(t.Context(), authsdk.RegisterRequest{
			FirstName: "No",
			LastName:  "Role",
			Username:  "norole",
			Email:     "norole@clinic.test",
			Password:  testPassword,
			Role:      "Janitor",
		})
		assertAPIError(t, err, http.StatusBadRequest, authsdk.ErrorCodeInvalidRequest)

		// the rejected account must not exist afterwards
		_, err = client.Login(t.Context(), authsdk.LoginRequest{Email: "norole@clinic.test", Password: testPassword})
		assertAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidGrant)
	})
}

func TestSessionMeAndRoles(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	ctx := t.Context()

	registerUser(t, client, "boss", "Admin")
	registerUser(t, client, "medic", "Doctor")

	admin, err := client.AuthenticateWithPassword(ctx, "boss@clinic.test", testPassword)
	require.NoError(t, err)

	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "boss", me.Username)
	require.Equal(t, []string{"Admin"}, me.Roles)

	roles, err := admin.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles.Roles, 5)

	doctor, err := client.AuthenticateWithPassword(ctx, "medic@clinic.test", testPassword)
	require.NoError(t, err)
	_, err = doctor.ListRoles(ctx)
	require.Error(t, err)

	require.NoError(t, doctor.Revoke(ctx))
}
