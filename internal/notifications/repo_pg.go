package notifications

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create appends a notification to the feed.
func (r *PGRepo) Create(ctx context.Context, n Notification) error {
	const query = `INSERT INTO notifications (id, message, created_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, n.ID, n.Message, n.CreatedAt)
	return err
}

// List returns the feed in reverse-chronological order.
func (r *PGRepo) List(ctx context.Context) ([]Notification, error) {
	const query = `SELECT id, message, created_at FROM notifications ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
