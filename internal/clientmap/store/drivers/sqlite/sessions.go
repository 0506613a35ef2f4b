package sqlite

import (
	"context"
	"time"

	"clientmap/internal/clientmap/domain"
)

type sessionsRepo struct {
	q querier
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, token_hash, expires_at, revoked, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.TokenHash, toMillis(s.ExpiresAt), s.Revoked,
		toMillis(s.CreatedAt), toMillis(s.UpdatedAt))
	return mapConstraint(err)
}

func (r *sessionsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_at, revoked, created_at, updated_at
		 FROM sessions WHERE token_hash = ?`, hash)

	var s domain.Session
	var expires, created, updated int64
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &expires, &s.Revoked, &created, &updated); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.ExpiresAt = fromMillis(expires)
	s.CreatedAt = fromMillis(created)
	s.UpdatedAt = fromMillis(updated)
	return s, nil
}

func (r *sessionsRepo) RotateToken(ctx context.Context, id, newHash string, expiresAt time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET token_hash = ?, expires_at = ?, updated_at = ? WHERE id = ?`,
		newHash, toMillis(expiresAt), toMillis(time.Now()), id)
	return mapConstraint(err)
}

func (r *sessionsRepo) Revoke(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ?`,
		toMillis(time.Now()), id)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, toMillis(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
