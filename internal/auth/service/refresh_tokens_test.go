package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateActive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 24*time.Hour)
	env.register(t, "drsmith", "Doctor")
	user := env.user(t, "drsmith")

	first, err := env.tokens.GetOrCreateActive(ctx, user)
	require.NoError(t, err)

	t.Run("reuses the active token", func(t *testing.T) {
		again, err := env.tokens.GetOrCreateActive(ctx, user)
		require.NoError(t, err)
		require.Equal(t, first.Token, again.Token)
	})

	t.Run("never revokes", func(t *testing.T) {
		tokens, err := env.store.RefreshTokens().ListUserRefreshTokens(ctx, user.ID)
		require.NoError(t, err)
		for _, tok := range tokens {
			require.Nil(t, tok.RevokedOn)
		}
	})

	t.Run("mints once the active token expires", func(t *testing.T) {
		env.clock.Advance(25 * time.Hour)

		next, err := env.tokens.GetOrCreateActive(ctx, user)
		require.NoError(t, err)
		require.NotEqual(t, first.Token, next.Token)
		require.True(t, next.ExpiresOn.Equal(env.clock.Now().Add(24*time.Hour)))
	})
}

func TestRotate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, time.Hour)
	env.register(t, "nurse", "Receptionist")
	user := env.user(t, "nurse")

	current, err := env.tokens.Issue(ctx, user)
	require.NoError(t, err)

	next, err := env.tokens.Rotate(ctx, current.Token)
	require.NoError(t, err)
	require.NotEqual(t, current.Token, next.Token)
	require.Equal(t, user.ID, next.UserID)

	old, err := env.tokens.Find(ctx, current.Token)
	require.NoError(t, err)
	require.False(t, old.IsActiveAt(env.clock.Now()))
	require.NotNil(t, old.RevokedOn)

	t.Run("replayed token is rejected", func(t *testing.T) {
		_, err := env.tokens.Rotate(ctx, current.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRotateAndRevokeRejectIdentically(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, time.Hour)
	env.register(t, "clerk", "Receptionist")
	user := env.user(t, "clerk")

	revoked, err := env.tokens.Issue(ctx, user)
	require.NoError(t, err)
	require.NoError(t, env.tokens.Revoke(ctx, revoked.Token))

	expired, err := env.tokens.Issue(ctx, user)
	require.NoError(t, err)
	env.clock.Advance(2 * time.Hour)

	cases := map[string]string{
		"missing": "no-such-token",
		"empty":   "",
		"revoked": revoked.Token,
		"expired": expired.Token,
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.tokens.Rotate(ctx, value)
			require.ErrorIs(t, err, ErrInvalidToken)

			err = env.tokens.Revoke(ctx, value)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRevokeTwice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, time.Hour)
	env.register(t, "admin", "Admin")

	tok, err := env.tokens.Issue(ctx, env.user(t, "admin"))
	require.NoError(t, err)

	require.NoError(t, env.tokens.Revoke(ctx, tok.Token))
	require.ErrorIs(t, env.tokens.Revoke(ctx, tok.Token), ErrInvalidToken)

	stored, err := env.tokens.Find(ctx, tok.Token)
	require.NoError(t, err)
	require.True(t, stored.Revoked())
}

func TestConcurrentRotateHasOneWinner(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, time.Hour)
	env.register(t, "racer", "Patient")

	tok, err := env.tokens.Issue(ctx, env.user(t, "racer"))
	require.NoError(t, err)

	const callers = 4
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		rejected int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.tokens.Rotate(ctx, tok.Token)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners++
			} else if errors.Is(err, ErrInvalidToken) {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, winners)
	require.Equal(t, callers-1, rejected)
}
