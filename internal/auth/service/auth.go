package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/metrics"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// Caller-facing failure messages. Login never says which half was wrong.
const (
	MsgBadCredentials = "Email or Password Incorrect"
	MsgInvalidToken   = "Invalid token"
)

// CredentialStore is the user side of the identity store.
type CredentialStore interface {
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	FindUserByID(ctx context.Context, id string) (domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (domain.User, error)
	VerifyPassword(ctx context.Context, user domain.User, plaintext string) (bool, error)
	CreateUser(ctx context.Context, user domain.User, plaintext string) (domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	AddUserToRole(ctx context.Context, user domain.User, roleName string) error
	GetUserClaims(ctx context.Context, user domain.User) ([]domain.Claim, error)
	GetUserRoleNames(ctx context.Context, user domain.User) ([]string, error)
}

// RoleStore is the role side of the identity store.
type RoleStore interface {
	FindRoleByName(ctx context.Context, name string) (domain.Role, error)
	FindRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleClaims(ctx context.Context, role domain.Role) ([]domain.Claim, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, name string) (domain.Role, error)
	AddRoleClaim(ctx context.Context, role domain.Role, claim domain.Claim) error
}

type AuthServiceConfig struct {
	Credentials CredentialStore
	Roles       RoleStore
	Tokens      *RefreshTokenManager
	Signer      jwtx.Signer
	Issuer      string
	Audience    string
	AccessTTL   time.Duration
	Validator   *Validator
}

// AuthService runs Login, Register, RefreshToken and RevokeToken. Claims are
// read from the stores on every call.
type AuthService struct {
	credentials CredentialStore
	roles       RoleStore
	tokens      *RefreshTokenManager
	signer      jwtx.Signer
	issuer      string
	audience    string
	accessTTL   time.Duration
	validator   *Validator
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.Validator == nil {
		cfg.Validator = NewValidator()
	}
	return &AuthService{
		credentials: cfg.Credentials,
		roles:       cfg.Roles,
		tokens:      cfg.Tokens,
		signer:      cfg.Signer,
		issuer:      cfg.Issuer,
		audience:    cfg.Audience,
		accessTTL:   cfg.AccessTTL,
		validator:   cfg.Validator,
	}
}

func failed(msg string) *domain.AuthResponse {
	return &domain.AuthResponse{Success: false, Message: msg}
}

// Login authenticates by email and password. The refresh token is the user's
// active one when it exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	l := slogx.FromContext(ctx)

	user, err := s.credentials.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login rejected", slog.String("reason", "unknown_email"))
			metrics.Logins.WithLabelValues(metrics.OutcomeFailure).Inc()
			return failed(MsgBadCredentials), nil
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	ok, err := s.credentials.VerifyPassword(ctx, user, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		l.Info("login rejected", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		metrics.Logins.WithLabelValues(metrics.OutcomeFailure).Inc()
		return failed(MsgBadCredentials), nil
	}

	access, roles, err := s.signAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	refresh, err := s.tokens.GetOrCreateActive(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login: refresh token: %w", err)
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	metrics.Logins.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return authenticated(user, access, refresh, roles), nil
}

// Register validates req in full, creates the account with the requested role
// and signs the user in. Validation problems come back together in Message.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	l := slogx.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.Role = strings.TrimSpace(req.Role)

	problems, err := s.validateRegistration(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if len(problems) > 0 {
		metrics.Registrations.WithLabelValues(metrics.OutcomeFailure).Inc()
		return failed(strings.Join(problems, "; ")), nil
	}

	user, err := s.credentials.CreateUser(ctx, domain.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// lost a race with a concurrent registration
			metrics.Registrations.WithLabelValues(metrics.OutcomeFailure).Inc()
			return failed("Email or username is already registered"), nil
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	// Anything failing past this point deletes the new account again so no
	// half-provisioned user is left behind, even once ctx is cancelled.
	undo := func() {
		if err := s.credentials.DeleteUser(context.WithoutCancel(ctx), user.ID); err != nil {
			l.Error("register rollback failed", slog.String("user_id", user.ID), slog.Any("error", err))
		}
	}

	if err := s.credentials.AddUserToRole(ctx, user, req.Role); err != nil {
		undo()
		if errors.Is(err, store.ErrNotFound) {
			metrics.Registrations.WithLabelValues(metrics.OutcomeFailure).Inc()
			return failed(fmt.Sprintf("Role '%s' does not exist", req.Role)), nil
		}
		return nil, fmt.Errorf("register: assign role: %w", err)
	}

	access, roles, err := s.signAccessToken(ctx, user)
	if err != nil {
		undo()
		return nil, fmt.Errorf("register: %w", err)
	}

	refresh, err := s.tokens.Issue(ctx, user)
	if err != nil {
		undo()
		return nil, fmt.Errorf("register: refresh token: %w", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID), slog.String("role", req.Role))
	metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return authenticated(user, access, refresh, roles), nil
}

func (s *AuthService) validateRegistration(ctx context.Context, req domain.RegisterRequest) ([]string, error) {
	problems := s.validator.Validate(req)

	if req.Email != "" {
		_, err := s.credentials.FindUserByEmail(ctx, req.Email)
		taken, err := found(err)
		if err != nil {
			return nil, err
		}
		if taken {
			problems = append(problems, "Email is already registered")
		}
	}

	if req.Username != "" {
		_, err := s.credentials.FindUserByUsername(ctx, req.Username)
		taken, err := found(err)
		if err != nil {
			return nil, err
		}
		if taken {
			problems = append(problems, "Username is already taken")
		}
	}

	if req.Role != "" {
		_, err := s.roles.FindRoleByName(ctx, req.Role)
		ok, err := found(err)
		if err != nil {
			return nil, err
		}
		if !ok {
			problems = append(problems, fmt.Sprintf("Role '%s' does not exist", req.Role))
		}
	}

	return problems, nil
}

// found turns a lookup error into a presence flag.
func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// RefreshToken trades an active refresh token for a new access and refresh
// token pair. The old refresh token is revoked.
func (s *AuthService) RefreshToken(ctx context.Context, value string) (*domain.AuthResponse, error) {
	l := slogx.FromContext(ctx)

	reject := func(reason string) (*domain.AuthResponse, error) {
		l.Info("refresh rejected", slog.String("reason", reason))
		metrics.Refreshes.WithLabelValues(metrics.OutcomeFailure).Inc()
		return failed(MsgInvalidToken), nil
	}

	current, err := s.tokens.Find(ctx, value)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return reject("unknown_token")
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if !current.IsActiveAt(s.tokens.now()) {
		return reject("inactive_token")
	}

	user, err := s.credentials.FindUserByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return reject("unknown_user")
		}
		return nil, fmt.Errorf("refresh: find user: %w", err)
	}

	// Sign before rotating: a signing failure leaves the presented token usable.
	access, roles, err := s.signAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	next, err := s.tokens.Rotate(ctx, value)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return reject("rotation_lost")
		}
		return nil, fmt.Errorf("refresh: rotate: %w", err)
	}

	l.Info("refresh token rotated", slog.String("user_id", user.ID))
	metrics.Refreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return authenticated(user, access, next, roles), nil
}

// RevokeToken revokes an active refresh token. It reports false when the
// token is unknown, expired or already revoked.
func (s *AuthService) RevokeToken(ctx context.Context, value string) (bool, error) {
	err := s.tokens.Revoke(ctx, value)
	switch {
	case err == nil:
		metrics.Revocations.WithLabelValues(metrics.OutcomeSuccess).Inc()
		slogx.FromContext(ctx).Info("refresh token revoked")
		return true, nil
	case errors.Is(err, ErrInvalidToken):
		metrics.Revocations.WithLabelValues(metrics.OutcomeFailure).Inc()
		return false, nil
	default:
		return false, fmt.Errorf("revoke: %w", err)
	}
}

// signAccessToken rebuilds the claim set from the stores and signs it. It
// returns the role names alongside the token for the response body.
func (s *AuthService) signAccessToken(ctx context.Context, user domain.User) (string, []string, error) {
	direct, err := s.credentials.GetUserClaims(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("user claims: %w", err)
	}

	roleNames, err := s.credentials.GetUserRoleNames(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("user roles: %w", err)
	}

	byRole := make(map[string][]domain.Claim, len(roleNames))
	for _, name := range roleNames {
		role, err := s.roles.FindRoleByName(ctx, name)
		if err != nil {
			return "", nil, fmt.Errorf("role %q: %w", name, err)
		}
		claims, err := s.roles.GetRoleClaims(ctx, role)
		if err != nil {
			return "", nil, fmt.Errorf("role %q claims: %w", name, err)
		}
		byRole[name] = claims
	}

	for _, c := range reservedClaims(direct, byRole) {
		slogx.FromContext(ctx).Warn("reserved claim type dropped from access token",
			slog.String("user_id", user.ID), slog.String("claim_type", c.Type))
	}

	claims := BuildClaims(user, direct, roleNames, byRole)

	token, err := s.signer.Sign(toJWTClaims(claims), s.issuer, s.audience, s.accessTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign access token: %w", err)
	}
	if roleNames == nil {
		roleNames = []string{}
	}
	return token, roleNames, nil
}

func authenticated(user domain.User, access string, refresh domain.RefreshToken, roles []string) *domain.AuthResponse {
	return &domain.AuthResponse{
		Success:                true,
		AccessToken:            access,
		RefreshToken:           refresh.Token,
		RefreshTokenExpiration: refresh.ExpiresOn,
		Username:               user.Username,
		Email:                  user.Email,
		Roles:                  roles,
	}
}
