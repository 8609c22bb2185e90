package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// DefaultRoles are provisioned at startup unless configured otherwise.
var DefaultRoles = []string{"SuperAdmin", "Admin", "Doctor", "Receptionist", "Patient"}

type RolesService struct {
	Roles RoleStore
}

// ListAll returns all roles ordered by name.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Roles.ListRoles(ctx)
}

// EnsureRoles creates every named role that does not exist yet. Running it
// again is a no-op.
func (s *RolesService) EnsureRoles(ctx context.Context, names []string) error {
	l := slogx.FromContext(ctx)

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		_, err := s.Roles.FindRoleByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("ensure role %q: %w", name, err)
		}

		role, err := s.Roles.CreateRole(ctx, name)
		if err != nil {
			// created by another instance in the meantime
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("ensure role %q: %w", name, err)
		}
		l.Info("role provisioned", slog.String("role", role.Name), slog.String("role_id", role.ID))
	}
	return nil
}
