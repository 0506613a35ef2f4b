package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"clientmap/internal/clientmap/domain"
	"clientmap/pkg/geo"
)

type recordsRepo struct {
	q querier
}

const recordColumns = `id, owner_id, first_name, last_name, phone, address, lat, lng, notes, created_at, updated_at`

func scanRecord(row interface{ Scan(...any) error }) (domain.ClientRecord, error) {
	var rec domain.ClientRecord
	var lat, lng sql.NullFloat64
	var created, updated int64
	err := row.Scan(
		&rec.ID, &rec.OwnerID,
		&rec.FirstName, &rec.LastName, &rec.Phone, &rec.Address,
		&lat, &lng, &rec.Notes,
		&created, &updated,
	)
	if err != nil {
		return domain.ClientRecord{}, mapNotFound(err)
	}

	// The pair is atomic for display purposes even though the schema
	// permits partial presence; a lone side maps to no location.
	if lat.Valid && lng.Valid {
		rec.Position = &geo.Point{Lat: lat.Float64, Lng: lng.Float64}
	}
	rec.CreatedAt = fromMillis(created)
	rec.UpdatedAt = fromMillis(updated)
	return rec, nil
}

func (r *recordsRepo) GetByID(ctx context.Context, id string) (domain.ClientRecord, error) {
	return scanRecord(r.q.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM client_records WHERE id = ?`, id))
}

func (r *recordsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.ClientRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM client_records WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ClientRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *recordsRepo) Create(ctx context.Context, rec domain.ClientRecord) error {
	var lat, lng any
	if rec.Position != nil {
		lat, lng = rec.Position.Lat, rec.Position.Lng
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO client_records (id, owner_id, first_name, last_name, phone, address, lat, lng, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OwnerID,
		rec.FirstName, rec.LastName, rec.Phone, rec.Address,
		lat, lng, rec.Notes,
		toMillis(rec.CreatedAt), toMillis(rec.UpdatedAt))
	return mapConstraint(err)
}

func (r *recordsRepo) Update(ctx context.Context, id string, p domain.ClientPatch) error {
	set := make([]string, 0, 8)
	args := make([]any, 0, 9)

	appendSet := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}

	if p.FirstName != nil {
		appendSet("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		appendSet("last_name", *p.LastName)
	}
	if p.Phone != nil {
		appendSet("phone", *p.Phone)
	}
	if p.Address != nil {
		appendSet("address", *p.Address)
	}
	if p.Notes != nil {
		appendSet("notes", *p.Notes)
	}
	switch {
	case p.Position != nil:
		appendSet("lat", p.Position.Lat)
		appendSet("lng", p.Position.Lng)
	case p.ClearPosition:
		appendSet("lat", nil)
		appendSet("lng", nil)
	}

	appendSet("updated_at", toMillis(time.Now()))
	args = append(args, id)

	res, err := r.q.ExecContext(ctx,
		`UPDATE client_records SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *recordsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM client_records WHERE id = ?`, id)
	return err
}
