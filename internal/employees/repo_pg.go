package employees

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. The note history is stored as a
// JSONB column, mirroring the document shape.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new employee.
func (r *PGRepo) Create(ctx context.Context, e Employee) error {
	const query = `
INSERT INTO employees (
    id, name, position, client, start_date, promotion_date, performance_rating, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	notes, err := json.Marshal(e.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		e.ID,
		e.Name,
		e.Position,
		e.Client,
		e.StartDate,
		nullTime(e.PromotionDate),
		e.PerformanceRating,
		notes,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

// List returns all employees, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Employee, error) {
	const query = `
SELECT id, name, position, client, start_date, promotion_date, performance_rating, notes, created_at, updated_at
FROM employees
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID returns the employee with the given id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	const query = `
SELECT id, name, position, client, start_date, promotion_date, performance_rating, notes, created_at, updated_at
FROM employees
WHERE id = $1`

	e, err := scanEmployee(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}
	return e, nil
}

// Update replaces the stored employee record. Last write wins.
func (r *PGRepo) Update(ctx context.Context, e Employee) error {
	const query = `
UPDATE employees
SET name = $2, position = $3, client = $4, start_date = $5, promotion_date = $6, performance_rating = $7, notes = $8, updated_at = $9
WHERE id = $1`

	notes, err := json.Marshal(e.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		e.ID,
		e.Name,
		e.Position,
		e.Client,
		e.StartDate,
		nullTime(e.PromotionDate),
		e.PerformanceRating,
		notes,
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the employee with the given id.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var e Employee
	var promotion sql.NullTime
	var notes []byte
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Position,
		&e.Client,
		&e.StartDate,
		&promotion,
		&e.PerformanceRating,
		&notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return Employee{}, err
	}
	if promotion.Valid {
		e.PromotionDate = &promotion.Time
	}
	e.Notes = []Note{}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &e.Notes); err != nil {
			return Employee{}, fmt.Errorf("unmarshal notes: %w", err)
		}
	}
	return e, nil
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
