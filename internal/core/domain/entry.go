package domain

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

// ReviewGracePeriod is how long after an entry's date a review may take
// before the entry counts as overdue. The deadline is measured against the
// entry date, not the creation timestamp.
const ReviewGracePeriod = 48 * time.Hour

// Entry represents a logbook, attendance, or leave record for one
// participant on one date. Status moves only through the transition
// operations on the entry service; ReviewedBy and ReviewedAt are either
// both set or both nil.
type Entry struct {
	EntryID       string      `json:"entryID"`       // Primary Key (e.g., UUID)
	ParticipantID string      `json:"participantID"` // Owning participant, immutable after creation
	EntryType     EntryType   `json:"entryType"`
	Date          time.Time   `json:"date"` // Calendar date the entry pertains to
	StartTime     *time.Time  `json:"startTime,omitempty"`
	EndTime       *time.Time  `json:"endTime,omitempty"`
	Description   string      `json:"description"`
	Status        EntryStatus `json:"status"`
	ReviewerNote  string      `json:"reviewerNote,omitempty"`
	ReviewedBy    *string     `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time  `json:"reviewedAt,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Duration returns the length of the activity window, or zero when either
// boundary is missing.
func (e *Entry) Duration() time.Duration {
	if e.StartTime == nil || e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(*e.StartTime)
}

// IsOverdue reports whether the entry is still awaiting review past the
// grace period after its date.
func (e *Entry) IsOverdue(now time.Time) bool {
	if e.Status != Pending {
		return false
	}
	return now.After(e.Date.Add(ReviewGracePeriod))
}

// IsReviewed reports whether a reviewer has acted on the entry.
func (e *Entry) IsReviewed() bool {
	return e.ReviewedBy != nil && e.ReviewedAt != nil
}
