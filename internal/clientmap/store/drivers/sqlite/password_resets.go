package sqlite

import (
	"context"
	"database/sql"
	"time"

	"clientmap/internal/clientmap/domain"
)

type passwordResetsRepo struct {
	q querier
}

func (r *passwordResetsRepo) Create(ctx context.Context, pr domain.PasswordReset) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO password_resets (id, user_id, token_hash, expires_at, used_at, created_at)
		 VALUES (?, ?, ?, ?, NULL, ?)`,
		pr.ID, pr.UserID, pr.TokenHash, toMillis(pr.ExpiresAt), toMillis(pr.CreatedAt))
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_at, used_at, created_at
		 FROM password_resets WHERE token_hash = ?`, hash)

	var pr domain.PasswordReset
	var expires, created int64
	var used sql.NullInt64
	if err := row.Scan(&pr.ID, &pr.UserID, &pr.TokenHash, &expires, &used, &created); err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	pr.ExpiresAt = fromMillis(expires)
	pr.UsedAt = fromMillisPtr(used)
	pr.CreatedAt = fromMillis(created)
	return pr, nil
}

func (r *passwordResetsRepo) MarkUsed(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE password_resets SET used_at = ? WHERE id = ?`,
		toMillis(time.Now()), id)
	return err
}

func (r *passwordResetsRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM password_resets WHERE expires_at < ?`, toMillis(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
