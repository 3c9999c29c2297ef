package notifications

import "context"

// Repo defines persistence operations for the notification feed.
type Repo interface {
	Create(ctx context.Context, n Notification) error
	List(ctx context.Context) ([]Notification, error)
}
