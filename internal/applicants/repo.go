package applicants

import "context"

// Repo defines persistence operations for applicants.
type Repo interface {
	Create(ctx context.Context, applicant Applicant) error
	ListByJob(ctx context.Context, jobID string) ([]Applicant, error)
}
