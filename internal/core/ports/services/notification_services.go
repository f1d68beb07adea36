package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// NotifierSvc is the emitter consumed by the entry workflow. Delivery
// failure must never abort the calling transition; callers log it and
// surface a warning.
type NotifierSvc interface {
	// Notify enqueues a user-visible notice for the recipient.
	Notify(ctx context.Context, recipientID, title, body string, kind domain.NotificationKind) error
}

// NotificationSvcFacade exposes the recipient-facing notification inbox.
type NotificationSvcFacade interface {
	NotifierSvc

	// ListNotifications retrieves the recipient's inbox, newest first.
	ListNotifications(ctx context.Context, recipientID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)

	// MarkRead marks one notification read for its recipient.
	MarkRead(ctx context.Context, notificationID string, recipientID string) error
}
