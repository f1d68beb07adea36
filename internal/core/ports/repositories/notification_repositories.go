package repositories

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// ListNotificationsByRecipient retrieves a paginated list of notifications
	// for a recipient, newest first.
	ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int, nextToken *string) ([]domain.Notification, *string, error)

	// CountUnread returns the number of unread notifications for a recipient.
	CountUnread(ctx context.Context, recipientID string) (int, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead marks one notification read for its recipient.
	MarkNotificationRead(ctx context.Context, notificationID string, recipientID string) error
}

// NotificationRepositoryFacade combines the notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
