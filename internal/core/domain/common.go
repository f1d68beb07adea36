package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Actor identifies the caller of a core operation. It is always passed
// explicitly; domain services never reach into ambient session state.
type Actor struct {
	ActorID    string `json:"actorID"`
	IsReviewer bool   `json:"isReviewer"` // capability to approve/reject/request revision
}
