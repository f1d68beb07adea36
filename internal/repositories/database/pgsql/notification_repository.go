package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/mapping"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/pagination"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{db: db}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// ListNotificationsByRecipient retrieves a page of notifications for a
// recipient, newest first, using keyset pagination over (created_at, notification_id).
func (r *PgxNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int, nextToken *string) ([]domain.Notification, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT notification_id, recipient_id, title, body, kind, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
	`
	args := []any{recipientID}

	if nextToken != nil && *nextToken != "" {
		beforeTime, beforeID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, notification_id) < ($2, $3)`
		args = append(args, beforeTime, beforeID)
	}

	// Fetch limit+1 to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY created_at DESC, notification_id DESC LIMIT $%d;", len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list notifications for recipient %s: %w", recipientID, err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.RecipientID, &m.Title, &m.Body, &m.Kind, &m.Read, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}

	var token *string
	if len(notifications) > limit {
		notifications = notifications[:limit]
		last := notifications[len(notifications)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.NotificationID)
		token = &t
	}

	return mapping.ToDomainNotificationSlice(notifications), token, nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *PgxNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE;`
	var count int
	if err := r.db.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for recipient %s: %w", recipientID, err)
	}
	return count, nil
}

// SaveNotification persists a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
		INSERT INTO notifications (notification_id, recipient_id, title, body, kind, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query, m.NotificationID, m.RecipientID, m.Title, m.Body, m.Kind, m.Read, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification %s: %w", m.NotificationID, err)
	}
	return nil
}

// MarkNotificationRead marks one notification read for its recipient. The
// recipient guard keeps users from touching notifications that are not theirs.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, recipientID string) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1 AND recipient_id = $2;
	`
	tag, err := r.db.Exec(ctx, query, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
