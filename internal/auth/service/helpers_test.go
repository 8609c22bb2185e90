package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/identity"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store/drivers/sqlite"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/cryptox"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "clinic-auth"
	testAudience = "clinic-api"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// fakeClock is a settable clock shared by the manager under test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now().UTC().Truncate(time.Millisecond)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	store       *sqlite.Store
	credentials *identity.Credentials
	roles       *identity.Roles
	tokens      *RefreshTokenManager
	auth        *AuthService
	verifier    *jwtx.HS256Verifier
	clock       *fakeClock
}

func newTestEnv(t *testing.T, refreshTTL time.Duration) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "auth.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	hasher := cryptox.NewPasswordHasher("test-pepper")
	hasher.Params.Memory = 1024
	hasher.Params.Iterations = 1

	clock := newFakeClock()
	tokens := NewRefreshTokenManager(s, refreshTTL)
	tokens.Now = clock.Now

	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(testSecret, testIssuer, testAudience)
	require.NoError(t, err)

	env := &testEnv{
		store:       s,
		credentials: identity.NewCredentials(s, hasher),
		roles:       identity.NewRoles(s),
		tokens:      tokens,
		verifier:    verifier,
		clock:       clock,
	}
	env.auth = NewAuthService(AuthServiceConfig{
		Credentials: env.credentials,
		Roles:       env.roles,
		Tokens:      tokens,
		Signer:      signer,
		Issuer:      testIssuer,
		Audience:    testAudience,
		AccessTTL:   15 * time.Minute,
	})

	rs := &RolesService{Roles: env.roles}
	require.NoError(t, rs.EnsureRoles(context.Background(), DefaultRoles))

	return env
}

func (e *testEnv) register(t *testing.T, username, role string) *domain.AuthResponse {
	t.Helper()

	resp, err := e.auth.Register(context.Background(), domain.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@clinic.test",
		Password:  "S3cure!pass",
		Role:      role,
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	return resp
}

func (e *testEnv) user(t *testing.T, username string) domain.User {
	t.Helper()

	u, err := e.credentials.FindUserByUsername(context.Background(), username)
	require.NoError(t, err)
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
