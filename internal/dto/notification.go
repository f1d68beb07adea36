package dto

import (
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Kind           string    `json:"kind"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListNotificationsParams holds pagination inputs for the notification inbox.
type ListNotificationsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListNotificationsResponse is the paginated notification inbox.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Body:           n.Body,
		Kind:           string(n.Kind),
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}
