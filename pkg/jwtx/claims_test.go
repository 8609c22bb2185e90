package jwtx_test

import (
	"testing"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewMapClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	t.Run("single values stay scalar", func(t *testing.T) {
		m := jwtx.NewMapClaims([]jwtx.Claim{
			{Type: jwtx.ClaimSubject, Value: "user-1"},
			{Type: jwtx.ClaimRole, Value: "Doctor"},
		}, "clinic-auth", "clinic-api", time.Hour, now)

		require.Equal(t, "user-1", m["sub"])
		require.Equal(t, "Doctor", m["role"])
	})

	t.Run("repeated types become arrays in order", func(t *testing.T) {
		m := jwtx.NewMapClaims([]jwtx.Claim{
			{Type: jwtx.ClaimRole, Value: "Admin"},
			{Type: jwtx.ClaimRole, Value: "Doctor"},
			{Type: jwtx.ClaimRole, Value: "Receptionist"},
		}, "clinic-auth", "clinic-api", time.Hour, now)

		require.Equal(t, []string{"Admin", "Doctor", "Receptionist"}, m["role"])
	})

	t.Run("registered claims are owned by the signer", func(t *testing.T) {
		m := jwtx.NewMapClaims([]jwtx.Claim{
			{Type: "iss", Value: "someone-else"},
			{Type: "exp", Value: "never"},
		}, "clinic-auth", "clinic-api", 5*time.Minute, now)

		require.Equal(t, "clinic-auth", m["iss"])
		require.Equal(t, "clinic-api", m["aud"])
		require.Equal(t, now.Unix(), m["iat"])
		require.Equal(t, now.Unix(), m["nbf"])
		require.Equal(t, now.Add(5*time.Minute).Unix(), m["exp"])
	})
}

func TestIdentityClaimsStaySingle(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	m := jwtx.NewMapClaims([]jwtx.Claim{
		{Type: jwtx.ClaimSubject, Value: "user-1"},
		{Type: jwtx.ClaimEmail, Value: "a@clinic.test"},
		{Type: jwtx.ClaimSubject, Value: "zzzz-admin"},
		{Type: jwtx.ClaimEmail, Value: "b@clinic.test"},
	}, "clinic-auth", "clinic-api", time.Hour, now)

	require.Equal(t, "user-1", m["sub"])
	require.Equal(t, "a@clinic.test", m["email"])
}

func TestIsReserved(t *testing.T) {
	for _, typ := range []string{"iss", "aud", "exp", "iat", "nbf", "jti", "sub", "unique_name", "email"} {
		require.True(t, jwtx.IsReserved(typ), typ)
	}
	for _, typ := range []string{"role", "permission", "department", ""} {
		require.False(t, jwtx.IsReserved(typ), typ)
	}
}

func TestPrincipalHelpers(t *testing.T) {
	p := jwtx.Principal{
		Roles: []string{"Admin"},
		Claims: []jwtx.Claim{
			{Type: "permission", Value: "patients.read"},
			{Type: "permission", Value: "patients.write"},
			{Type: jwtx.ClaimRole, Value: "Admin"},
		},
	}

	require.True(t, p.HasRole("Admin"))
	require.False(t, p.HasRole("Doctor"))
	require.Equal(t, []string{"patients.read", "patients.write"}, p.Values("permission"))
	require.Empty(t, p.Values("missing"))
}
