package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnsureRoles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, time.Hour)
	rs := &RolesService{Roles: env.roles}

	require.NoError(t, rs.EnsureRoles(ctx, []string{"Doctor", " Pharmacist ", ""}))
	require.NoError(t, rs.EnsureRoles(ctx, []string{"pharmacist"}))

	roles, err := rs.ListAll(ctx)
	require.NoError(t, err)

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	require.Equal(t, []string{"Admin", "Doctor", "Patient", "Pharmacist", "Receptionist", "SuperAdmin"}, names)
}
