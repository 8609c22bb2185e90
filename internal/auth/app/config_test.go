package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("AUTH_ISSUER", "clinic-auth")
	t.Setenv("AUTH_AUDIENCE", "clinic-api")
	t.Setenv("AUTH_SIGNING_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_ACCESS_TOKEN_MINUTES", "15")
	t.Setenv("AUTH_REFRESH_TOKEN_DAYS", "7")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, "clinic-auth", cfg.Issuer)
		require.Equal(t, "clinic-api", cfg.Audience)
		require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
		require.Equal(t, "auth.db", cfg.DatabaseFile)
		require.Equal(t, service.DefaultRoles, cfg.DefaultRoles)
		require.Equal(t, service.DefaultTokenRetention, cfg.TokenRetention)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
		require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	})

	t.Run("overrides from the environment", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AUTH_DEFAULT_ROLES", "Doctor, Nurse,,")
		t.Setenv("AUTH_TOKEN_RETENTION", "48h")
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_FORMAT", "text")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, []string{"Doctor", "Nurse"}, cfg.DefaultRoles)
		require.Equal(t, 48*time.Hour, cfg.TokenRetention)
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("config file under the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
auth:
  issuer: from-file
  audience: clinic-api
  signing_key: ffffffffffffffffffffffffffffffff
  access_token_minutes: 5
  refresh_token_days: 1
port: 7000
`), 0o600))

		t.Setenv("AUTH_CONFIG_FILE", path)
		t.Setenv("PORT", "7001")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, "from-file", cfg.Issuer)
		require.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
		require.Equal(t, 7001, cfg.Port)
	})

	t.Run("reports every missing option", func(t *testing.T) {
		t.Setenv("AUTH_SIGNING_KEY", "short")
		t.Setenv("AUTH_ACCESS_TOKEN_MINUTES", "0")

		_, err := LoadConfig()
		require.Error(t, err)
		for _, want := range []string{
			"AUTH_ISSUER", "AUTH_AUDIENCE", "AUTH_SIGNING_KEY",
			"AUTH_ACCESS_TOKEN_MINUTES", "AUTH_REFRESH_TOKEN_DAYS",
		} {
			require.ErrorContains(t, err, want)
		}
	})
}
