package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
)

type refreshTokensRepo struct {
	db dbtx
}

const refreshTokenColumns = `id, user_id, token, expires_on, created_on, revoked_on`

func scanRefreshToken(row rowScanner) (domain.RefreshToken, error) {
	var (
		t       domain.RefreshToken
		revoked sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresOn, &t.CreatedOn, &revoked); err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	t.ExpiresOn = t.ExpiresOn.UTC()
	t.CreatedOn = t.CreatedOn.UTC()
	t.RevokedOn = mapNullTimePtr(revoked)
	return t, nil
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (`+refreshTokenColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Token, t.ExpiresOn.UTC(), t.CreatedOn.UTC(), mapOptionalTime(t.RevokedOn))
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByValue(ctx context.Context, value string) (domain.RefreshToken, error) {
	return scanRefreshToken(r.db.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE token = ?`, value))
}

func (r *refreshTokensRepo) ListUserRefreshTokens(ctx context.Context, userID string) ([]domain.RefreshToken, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+refreshTokenColumns+`
		FROM refresh_tokens
		WHERE user_id = ?
		ORDER BY created_on DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.RefreshToken
	for rows.Next() {
		t, err := scanRefreshToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *refreshTokensRepo) RevokeRefreshToken(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked_on = ? WHERE id = ? AND revoked_on IS NULL`,
		at.UTC(), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM refresh_tokens WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrConflict
}

func (r *refreshTokensRepo) DeleteRefreshTokensBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM refresh_tokens
		WHERE expires_on < ?1
		   OR (revoked_on IS NOT NULL AND revoked_on < ?1)`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
