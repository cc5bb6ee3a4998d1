// README: Notification store backed by PostgreSQL.
package notification

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

var ErrNotFound = errors.New("notification not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, n *Notification) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO notifications (id, recipient_id, subject, message, sent_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(n.ID), string(n.Recipient), n.Subject, n.Message, n.SentAt, n.IsRead,
	)
	return err
}

func (s *Store) ListByRecipient(ctx context.Context, recipient types.ID) ([]Notification, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, recipient_id, subject, message, sent_at, is_read
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY sent_at DESC`, string(recipient),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Recipient, &n.Subject, &n.Message, &n.SentAt, &n.IsRead); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flips is_read for a notification owned by recipient. Scoping by
// recipient keeps one user from acknowledging another's notifications.
func (s *Store) MarkRead(ctx context.Context, recipient, id types.ID) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2`,
		string(id), string(recipient),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
