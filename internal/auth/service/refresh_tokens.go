package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/cryptox"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/idx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
)

// ErrInvalidToken covers unknown, expired and revoked refresh tokens alike.
var ErrInvalidToken = errors.New("invalid_token")

// RefreshTokenManager owns the refresh token lifecycle: Active, then either
// Revoked or Expired, never back.
type RefreshTokenManager struct {
	Store store.Store
	TTL   time.Duration
	Now   func() time.Time
}

func NewRefreshTokenManager(s store.Store, ttl time.Duration) *RefreshTokenManager {
	if ttl <= 0 {
		ttl = jwtx.DefaultRefreshTokenTTL
	}
	return &RefreshTokenManager{Store: s, TTL: ttl, Now: time.Now}
}

func (m *RefreshTokenManager) now() time.Time {
	if m.Now == nil {
		return time.Now().UTC()
	}
	return m.Now().UTC()
}

func (m *RefreshTokenManager) mint(userID string, now time.Time) (domain.RefreshToken, error) {
	value, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.RefreshToken{}, err
	}
	return domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Token:     value,
		ExpiresOn: now.Add(m.TTL),
		CreatedOn: now,
	}, nil
}

// GetOrCreateActive returns the user's active token, minting one only when
// none is active. It never revokes anything.
func (m *RefreshTokenManager) GetOrCreateActive(ctx context.Context, user domain.User) (domain.RefreshToken, error) {
	var out domain.RefreshToken

	err := m.Store.WithTx(ctx, func(tx store.Tx) error {
		now := m.now()

		tokens, err := tx.RefreshTokens().ListUserRefreshTokens(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("list refresh tokens: %w", err)
		}
		for _, t := range tokens {
			if t.IsActiveAt(now) {
				out = t
				return nil
			}
		}

		t, err := m.mint(user.ID, now)
		if err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, t); err != nil {
			return fmt.Errorf("create refresh token: %w", err)
		}
		out = t
		return nil
	})
	if err != nil {
		return domain.RefreshToken{}, err
	}
	return out, nil
}

// Issue always mints a new token for the user.
func (m *RefreshTokenManager) Issue(ctx context.Context, user domain.User) (domain.RefreshToken, error) {
	t, err := m.mint(user.ID, m.now())
	if err != nil {
		return domain.RefreshToken{}, err
	}
	if err := m.Store.RefreshTokens().CreateRefreshToken(ctx, t); err != nil {
		return domain.RefreshToken{}, fmt.Errorf("create refresh token: %w", err)
	}
	return t, nil
}

// Find looks a token up by its value regardless of state.
func (m *RefreshTokenManager) Find(ctx context.Context, value string) (domain.RefreshToken, error) {
	if value == "" {
		return domain.RefreshToken{}, ErrInvalidToken
	}
	t, err := m.Store.RefreshTokens().GetRefreshTokenByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RefreshToken{}, ErrInvalidToken
		}
		return domain.RefreshToken{}, err
	}
	return t, nil
}

// Rotate revokes the active token identified by value and installs its
// replacement in the same transaction.
func (m *RefreshTokenManager) Rotate(ctx context.Context, value string) (domain.RefreshToken, error) {
	var next domain.RefreshToken

	err := m.Store.WithTx(ctx, func(tx store.Tx) error {
		now := m.now()

		old, err := lookupActive(ctx, tx, value, now)
		if err != nil {
			return err
		}
		if err := revoke(ctx, tx, old.ID, now); err != nil {
			return err
		}

		next, err = m.mint(old.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, next); err != nil {
			return fmt.Errorf("create refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RefreshToken{}, err
	}
	return next, nil
}

// Revoke marks the active token identified by value as revoked. A second call
// for the same value fails with ErrInvalidToken.
func (m *RefreshTokenManager) Revoke(ctx context.Context, value string) error {
	return m.Store.WithTx(ctx, func(tx store.Tx) error {
		now := m.now()

		t, err := lookupActive(ctx, tx, value, now)
		if err != nil {
			return err
		}
		return revoke(ctx, tx, t.ID, now)
	})
}

func lookupActive(ctx context.Context, s store.Store, value string, now time.Time) (domain.RefreshToken, error) {
	if value == "" {
		return domain.RefreshToken{}, ErrInvalidToken
	}

	t, err := s.RefreshTokens().GetRefreshTokenByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RefreshToken{}, ErrInvalidToken
		}
		return domain.RefreshToken{}, fmt.Errorf("get refresh token: %w", err)
	}
	if !t.IsActiveAt(now) {
		return domain.RefreshToken{}, ErrInvalidToken
	}
	return t, nil
}

func revoke(ctx context.Context, s store.Store, id string, now time.Time) error {
	err := s.RefreshTokens().RevokeRefreshToken(ctx, id, now)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrNotFound):
		return ErrInvalidToken
	default:
		return fmt.Errorf("revoke refresh token: %w", err)
	}
}
