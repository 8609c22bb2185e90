// Package identity adapts the store to the credential and role capabilities
// the auth service consumes, hashing passwords on the way in.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/cryptox"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/idx"
)

// Credentials holds user identities and their password hashes.
type Credentials struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
}

func NewCredentials(s store.Store, hasher *cryptox.PasswordHasher) *Credentials {
	return &Credentials{Store: s, Hasher: hasher}
}

func (c *Credentials) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return c.Store.Users().GetUserByEmail(ctx, email)
}

func (c *Credentials) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	return c.Store.Users().GetUserByID(ctx, id)
}

func (c *Credentials) FindUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return c.Store.Users().GetUserByUsername(ctx, username)
}

// VerifyPassword reports a mismatch as false; only a corrupt stored hash is
// an error.
func (c *Credentials) VerifyPassword(_ context.Context, user domain.User, plaintext string) (bool, error) {
	err := c.Hasher.Verify(plaintext, user.PasswordHash)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cryptox.ErrPasswordMismatch):
		return false, nil
	default:
		return false, fmt.Errorf("verify password for user %s: %w", user.ID, err)
	}
}

// CreateUser hashes plaintext and inserts the user. An empty ID is filled
// with a new ULID.
func (c *Credentials) CreateUser(ctx context.Context, user domain.User, plaintext string) (domain.User, error) {
	hash, err := c.Hasher.Hash(plaintext)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	if user.ID == "" {
		user.ID = idx.NewAt(now).String()
	}
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := c.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *Credentials) DeleteUser(ctx context.Context, userID string) error {
	return c.Store.Users().DeleteUser(ctx, userID)
}

// AddUserToRole resolves the role by name; an unknown name is store.ErrNotFound.
func (c *Credentials) AddUserToRole(ctx context.Context, user domain.User, roleName string) error {
	role, err := c.Store.Roles().GetRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	return c.Store.Users().AddUserToRole(ctx, user.ID, role.ID)
}

func (c *Credentials) GetUserClaims(ctx context.Context, user domain.User) ([]domain.Claim, error) {
	return c.Store.Users().ListUserClaims(ctx, user.ID)
}

func (c *Credentials) AddUserClaim(ctx context.Context, user domain.User, claim domain.Claim) error {
	return c.Store.Users().AddUserClaim(ctx, user.ID, claim)
}

func (c *Credentials) GetUserRoleNames(ctx context.Context, user domain.User) ([]string, error) {
	return c.Store.Users().ListUserRoleNames(ctx, user.ID)
}

// Roles holds roles and their claims.
type Roles struct {
	Store store.Store
}

func NewRoles(s store.Store) *Roles {
	return &Roles{Store: s}
}

func (r *Roles) FindRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return r.Store.Roles().GetRoleByName(ctx, name)
}

func (r *Roles) FindRoleByID(ctx context.Context, id string) (domain.Role, error) {
	return r.Store.Roles().GetRoleByID(ctx, id)
}

func (r *Roles) GetRoleClaims(ctx context.Context, role domain.Role) ([]domain.Claim, error) {
	return r.Store.Roles().ListRoleClaims(ctx, role.ID)
}

func (r *Roles) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return r.Store.Roles().ListAll(ctx)
}

// CreateRole inserts a role named name; a taken name is store.ErrAlreadyExists.
func (r *Roles) CreateRole(ctx context.Context, name string) (domain.Role, error) {
	now := time.Now().UTC()
	role := domain.Role{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Store.Roles().CreateRole(ctx, role); err != nil {
		return domain.Role{}, err
	}
	return role, nil
}

func (r *Roles) AddRoleClaim(ctx context.Context, role domain.Role, claim domain.Claim) error {
	return r.Store.Roles().AddRoleClaim(ctx, role.ID, claim)
}
