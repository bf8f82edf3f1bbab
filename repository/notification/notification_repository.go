package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/satriawidya/bloodlink/model"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, userID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Insert(ctx context.Context, notification *model.Notification) error {
	q := "INSERT INTO notification (id, user_id, title, body) VALUES (?, ?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q,
		notification.ID, notification.UserID, notification.Title, notification.Body)
	return err
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	notifications := make([]model.Notification, 0)
	q := "SELECT id, user_id, title, body, is_read, created_at FROM notification WHERE user_id = ? ORDER BY created_at DESC"
	if err := r.conn.SelectContext(ctx, &notifications, q, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *SQL) MarkRead(ctx context.Context, id string, userID uint64) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE notification SET is_read = true WHERE id = ? AND user_id = ?", id, userID)
	return err
}
