package notifications

import (
	"errors"
	"time"
)

// Notification is an append-only feed entry. Records are never updated or
// deleted.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrMessageRequired = errors.New("Message is required")
