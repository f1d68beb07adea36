package domain

import "time"

// NotificationKind categorises a notification for the client UI.
type NotificationKind string

const (
	NotifyInfo     NotificationKind = "INFO"
	NotifyApproval NotificationKind = "APPROVAL"
	NotifyWarning  NotificationKind = "WARNING"
)

// Notification is a user-visible notice owned by its recipient. The core
// creates notifications as a transition side effect and never mutates them
// afterwards; only the recipient marks them read.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (e.g., UUID)
	RecipientID    string           `json:"recipientID"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	Kind           NotificationKind `json:"kind"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
