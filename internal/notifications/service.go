package notifications

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-backend/internal/notify"
)

// Service persists and broadcasts notifications. The two side effects are
// independent: a failed write never stops the broadcast, and an empty
// broadcast set never stops the write.
type Service struct {
	Repo        Repo
	Broadcaster notify.Broadcaster
}

// Send records the notification and pushes it to connected clients.
// The broadcast happens even when persistence fails; the persistence error
// is still returned to the caller.
func (s *Service) Send(ctx context.Context, message string) (Notification, error) {
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrMessageRequired
	}

	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Repo.Create(ctx, n)
	s.Broadcaster.Publish(notify.Event{Message: message})
	if err != nil {
		return Notification{}, err
	}
	return n, nil
}

// List returns the feed in reverse-chronological order.
func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.Repo.List(ctx)
}
