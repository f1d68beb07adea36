package dto

import (
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// CreateEntryRequest defines the payload for creating a logbook, attendance,
// or leave entry. Deeper rules (future date, window length, overlap) are
// enforced by the entry service.
type CreateEntryRequest struct {
	EntryType   string     `json:"entryType" binding:"required,oneof=LOGBOOK ATTENDANCE LEAVE"`
	Date        time.Time  `json:"date" binding:"required"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Description string     `json:"description" binding:"required"`
}

// ResubmitEntryRequest defines the payload for editing and resubmitting an
// entry that was rejected or sent back for revision. The entry date is
// immutable; only the content and the activity window may change.
type ResubmitEntryRequest struct {
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Description string     `json:"description" binding:"required"`
}

// ReviewRequest carries the reviewer note for approve, reject, and
// request-revision operations. The note is optional on approve and must meet
// the minimum length on reject/revision (checked by the service).
type ReviewRequest struct {
	Note string `json:"note"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID         string     `json:"entryID"`
	ParticipantID   string     `json:"participantID"`
	EntryType       string     `json:"entryType"`
	Date            time.Time  `json:"date"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int64      `json:"durationMinutes"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	ReviewerNote    string     `json:"reviewerNote,omitempty"`
	ReviewedBy      *string    `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	IsOverdue       bool       `json:"isOverdue"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ReviewResult is the response for a successful transition. Warning is set
// when the transition committed but the participant notification could not
// be delivered.
type ReviewResult struct {
	Entry   EntryResponse `json:"entry"`
	Warning string        `json:"warning,omitempty"`
}

// ListEntriesParams holds the filter and pagination inputs for listing entries.
type ListEntriesParams struct {
	ParticipantID *string    `form:"participantID"`
	EntryType     *string    `form:"entryType"`
	Status        *string    `form:"status"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit         int        `form:"limit"`
	NextToken     *string    `form:"nextToken"`
}

// ListEntriesResponse is the paginated entry listing.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.Entry to an EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		ParticipantID:   e.ParticipantID,
		EntryType:       string(e.EntryType),
		Date:            e.Date,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		DurationMinutes: int64(e.Duration().Minutes()),
		Description:     e.Description,
		Status:          string(e.Status),
		ReviewerNote:    e.ReviewerNote,
		ReviewedBy:      e.ReviewedBy,
		ReviewedAt:      e.ReviewedAt,
		IsOverdue:       e.IsOverdue(time.Now().UTC()),
		CreatedAt:       e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries to response DTOs.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
