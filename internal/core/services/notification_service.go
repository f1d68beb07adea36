package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

const defaultNotificationPageSize = 20

// notificationService persists and serves user-visible notices. The write
// side is fire-and-forget from the caller's point of view: the entry
// workflow invokes Notify after its transaction commits and only logs a
// failure.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

// Ensure notificationService implements the portssvc.NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Notify enqueues a user-visible notice for the recipient.
// Implements portssvc.NotifierSvc
func (s *notificationService) Notify(ctx context.Context, recipientID, title, body string, kind domain.NotificationKind) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		RecipientID:    recipientID,
		Title:          title,
		Body:           body,
		Kind:           kind,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// ListNotifications retrieves the recipient's inbox, newest first, together
// with the unread count.
// Implements portssvc.NotificationSvcFacade
func (s *notificationService) ListNotifications(ctx context.Context, recipientID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	notifications, nextToken, err := s.notificationRepo.ListNotificationsByRecipient(ctx, recipientID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		logger.Error("Failed to count unread notifications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := &dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, len(notifications)),
		UnreadCount:   unread,
		NextToken:     nextToken,
	}
	for i := range notifications {
		resp.Notifications[i] = dto.ToNotificationResponse(&notifications[i])
	}
	return resp, nil
}

// MarkRead marks one notification read for its recipient. Marking a foreign
// notification reports NotFound.
// Implements portssvc.NotificationSvcFacade
func (s *notificationService) MarkRead(ctx context.Context, notificationID string, recipientID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, recipientID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Notification marked read", slog.String("notification_id", notificationID))
	return nil
}
