package models

import "time"

// NotificationKind categorises a notification for the client UI.
type NotificationKind string

const (
	NotifyInfo     NotificationKind = "INFO"
	NotifyApproval NotificationKind = "APPROVAL"
	NotifyWarning  NotificationKind = "WARNING"
)

// Notification is a user-visible notice owned by its recipient.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (e.g., UUID)
	RecipientID    string           `json:"recipientID"`    // FK -> users.user_id (Not Null)
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	Kind           NotificationKind `json:"kind"`
	Read           bool             `json:"read" db:"is_read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
