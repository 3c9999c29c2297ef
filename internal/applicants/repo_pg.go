package applicants

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new applicant.
func (r *PGRepo) Create(ctx context.Context, a Applicant) error {
	const query = `
INSERT INTO applicants (
    id, job_id, name, email, phone, current_salary, expected_salary, portfolio_link, linkedin_profile, resume, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		a.ID,
		a.JobID,
		a.Name,
		a.Email,
		a.Phone,
		nullFloat(a.CurrentSalary),
		nullFloat(a.ExpectedSalary),
		a.PortfolioLink,
		a.LinkedinProfile,
		a.Resume,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// ListByJob returns applicants for the given job in submission order.
func (r *PGRepo) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	const query = `
SELECT id, job_id, name, email, phone, current_salary, expected_salary, portfolio_link, linkedin_profile, resume, created_at, updated_at
FROM applicants
WHERE job_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Applicant{}
	for rows.Next() {
		var a Applicant
		var current, expected sql.NullFloat64
		if err := rows.Scan(
			&a.ID,
			&a.JobID,
			&a.Name,
			&a.Email,
			&a.Phone,
			&current,
			&expected,
			&a.PortfolioLink,
			&a.LinkedinProfile,
			&a.Resume,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if current.Valid {
			v := current.Float64
			a.CurrentSalary = &v
		}
		if expected.Valid {
			v := expected.Float64
			a.ExpectedSalary = &v
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
