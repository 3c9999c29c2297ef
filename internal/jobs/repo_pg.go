package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Embedded applicant sub-records are
// stored as a JSONB column, mirroring the document shape.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job posting.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id, title, department, description, requirements, salary, position, location, job_type, status, applicants, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	applicants, err := json.Marshal(job.Applicants)
	if err != nil {
		return fmt.Errorf("marshal applicants: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Department,
		job.Description,
		job.Requirements,
		job.Salary,
		job.Position,
		job.Location,
		string(job.JobType),
		string(job.Status),
		applicants,
		job.CreatedAt,
	)
	return err
}

// List returns all postings, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	const query = `
SELECT id, title, department, description, requirements, salary, position, location, job_type, status, applicants, created_at
FROM jobs
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// GetByID returns the posting with the given id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Job, error) {
	const query = `
SELECT id, title, department, description, requirements, salary, position, location, job_type, status, applicants, created_at
FROM jobs
WHERE id = $1`

	job, err := scanJob(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// Delete removes the posting with the given id.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
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

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var applicants []byte
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Department,
		&job.Description,
		&job.Requirements,
		&job.Salary,
		&job.Position,
		&job.Location,
		&job.JobType,
		&job.Status,
		&applicants,
		&job.CreatedAt,
	); err != nil {
		return Job{}, err
	}
	job.Applicants = []JobApplicant{}
	if len(applicants) > 0 {
		if err := json.Unmarshal(applicants, &job.Applicants); err != nil {
			return Job{}, fmt.Errorf("unmarshal applicants: %w", err)
		}
	}
	return job, nil
}

var _ Repo = (*PGRepo)(nil)
