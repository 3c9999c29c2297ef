package applicants

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Applicant
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a new applicant.
func (r *MemoryRepo) Create(ctx context.Context, applicant Applicant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, applicant)
	return nil
}

// ListByJob returns applicants for the given job in submission order.
func (r *MemoryRepo) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Applicant{}
	for _, a := range r.data {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
