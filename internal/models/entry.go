package models

import "time"

// EntryType distinguishes the kinds of daily records a participant can file.
type EntryType string

const (
	Logbook    EntryType = "LOGBOOK"
	Attendance EntryType = "ATTENDANCE"
	Leave      EntryType = "LEAVE"
)

// EntryStatus indicates where an entry sits in the approval workflow.
type EntryStatus string

const (
	Pending       EntryStatus = "PENDING"
	Approved      EntryStatus = "APPROVED"
	Rejected      EntryStatus = "REJECTED"
	NeedsRevision EntryStatus = "NEEDS_REVISION"
)

// Entry represents one logbook/attendance/leave row.
type Entry struct {
	EntryID       string      `json:"entryID"`       // Primary Key (e.g., UUID)
	ParticipantID string      `json:"participantID"` // FK -> users.user_id (Not Null)
	EntryType     EntryType   `json:"entryType"`
	Date          time.Time   `json:"date" db:"entry_date"`
	StartTime     *time.Time  `json:"startTime" db:"start_time"` // Nullable
	EndTime       *time.Time  `json:"endTime" db:"end_time"`     // Nullable
	Description   string      `json:"description"`
	Status        EntryStatus `json:"status"` // Default: PENDING
	ReviewerNote  string      `json:"reviewerNote" db:"reviewer_note"`
	ReviewedBy    *string     `json:"reviewedBy" db:"reviewed_by"` // Both null or both set with ReviewedAt
	ReviewedAt    *time.Time  `json:"reviewedAt" db:"reviewed_at"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
