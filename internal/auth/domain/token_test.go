package domain_test

import (
	"testing"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenState(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active before expiry", func(t *testing.T) {
		rt := domain.RefreshToken{ExpiresOn: now.Add(time.Minute)}
		require.False(t, rt.IsExpiredAt(now))
		require.True(t, rt.IsActiveAt(now))
	})

	t.Run("expired exactly at expiry", func(t *testing.T) {
		rt := domain.RefreshToken{ExpiresOn: now}
		require.True(t, rt.IsExpiredAt(now))
		require.False(t, rt.IsActiveAt(now))
	})

	t.Run("revoked is never active", func(t *testing.T) {
		revoked := now.Add(-time.Second)
		rt := domain.RefreshToken{ExpiresOn: now.Add(time.Hour), RevokedOn: &revoked}
		require.True(t, rt.Revoked())
		require.False(t, rt.IsActiveAt(now))
	})
}
