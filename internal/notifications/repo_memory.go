package notifications

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Notification
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a notification to the feed.
func (r *MemoryRepo) Create(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, n)
	return nil
}

// List returns the feed in reverse-chronological order.
func (r *MemoryRepo) List(ctx context.Context) ([]Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Notification, 0, len(r.data))
	for i := len(r.data) - 1; i >= 0; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
