//go:build e2e

package auth_test

import (
	"testing"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))

	t.Run("livez", func(t *testing.T) {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.GetReadiness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
