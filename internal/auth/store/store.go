package store

import (
	"context"
	"errors"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict reports a conditional write that matched no row because
	// another writer got there first.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx-scoped store can hand out
// the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Roles() Roles
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail and GetUserByUsername match case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID). A
	// duplicate username or email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser cascades to claims, role assignments and refresh tokens.
	DeleteUser(ctx context.Context, userID string) error

	// ListUserClaims returns the claims attached directly to the user in
	// insertion order.
	ListUserClaims(ctx context.Context, userID string) ([]domain.Claim, error)
	AddUserClaim(ctx context.Context, userID string, c domain.Claim) error

	// ListUserRoleNames returns role names in assignment order.
	ListUserRoleNames(ctx context.Context, userID string) ([]string, error)
	AddUserToRole(ctx context.Context, userID, roleID string) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName matches case-insensitively.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles ordered by name.
	ListAll(ctx context.Context) ([]domain.Role, error)

	CreateRole(ctx context.Context, r domain.Role) error

	// ListRoleClaims returns the role's claims in insertion order.
	ListRoleClaims(ctx context.Context, roleID string) ([]domain.Claim, error)
	AddRoleClaim(ctx context.Context, roleID string, c domain.Claim) error
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByValue looks a token up through the unique value index.
	GetRefreshTokenByValue(ctx context.Context, value string) (domain.RefreshToken, error)

	// ListUserRefreshTokens returns every token of the user, newest first.
	ListUserRefreshTokens(ctx context.Context, userID string) ([]domain.RefreshToken, error)

	// RevokeRefreshToken sets revoked_on only when the token is not already
	// revoked. ErrConflict when it was, ErrNotFound when the id is unknown.
	RevokeRefreshToken(ctx context.Context, id string, at time.Time) error

	// DeleteRefreshTokensBefore removes tokens that expired or were revoked
	// before cutoff and returns how many rows went.
	DeleteRefreshTokensBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
