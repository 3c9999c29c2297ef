package jobs

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, job Job) error
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Delete(ctx context.Context, id string) error
}
