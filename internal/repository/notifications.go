package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

func (r *Repository) CreateNotification(notification *domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notifications (user_id, title, message, severity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, read, created_at
	`

	args := []any{notification.UserID, notification.Title, notification.Message, notification.Severity}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notification.ID, &notification.Read, &notification.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNotificationsByUserID(userID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, title, message, severity, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		var notification domain.Notification
		dst := []any{
			&notification.ID,
			&notification.UserID,
			&notification.Title,
			&notification.Message,
			&notification.Severity,
			&notification.Read,
			&notification.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) GetNotificationByID(id int64) (*domain.Notification, error) {
	query := `
		SELECT user_id, title, message, severity, read, created_at
		FROM notifications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	notification := &domain.Notification{
		ID: id,
	}

	dst := []any{
		&notification.UserID,
		&notification.Title,
		&notification.Message,
		&notification.Severity,
		&notification.Read,
		&notification.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return notification, nil
}

func (r *Repository) MarkNotificationAsRead(id int64) error {
	query := `
		UPDATE notifications SET read = true WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
