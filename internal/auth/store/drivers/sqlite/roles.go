package sqlite

import (
	"context"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = `id, name, created_at, updated_at`

func scanRole(row rowScanner) (domain.Role, error) {
	var r domain.Role
	if err := row.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return r, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	return scanRole(r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ?`, id))
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return scanRole(r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE name = ? COLLATE NOCASE`, name))
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now().UTC()
	}
	if role.UpdatedAt.IsZero() {
		role.UpdatedAt = role.CreatedAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (`+roleColumns+`) VALUES (?, ?, ?, ?)`,
		role.ID, role.Name, role.CreatedAt.UTC(), role.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *rolesRepo) ListRoleClaims(ctx context.Context, roleID string) ([]domain.Claim, error) {
	return queryClaims(ctx, r.db,
		`SELECT claim_type, claim_value FROM role_claims WHERE role_id = ? ORDER BY id`, roleID)
}

func (r *rolesRepo) AddRoleClaim(ctx context.Context, roleID string, c domain.Claim) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO role_claims (role_id, claim_type, claim_value) VALUES (?, ?, ?)`,
		roleID, c.Type, c.Value)
	return mapConstraint(err)
}
