package dto

import (
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// EntryReportFilter narrows the entry set a report runs over.
type EntryReportFilter struct {
	ParticipantID *string    `form:"participantID"`
	EntryType     *string    `form:"entryType"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
}

// EntrySummaryResponse is the dashboard report shape for a filtered entry set.
type EntrySummaryResponse struct {
	Pending              int     `json:"pending"`
	Approved             int     `json:"approved"`
	Rejected             int     `json:"rejected"`
	NeedsRevision        int     `json:"needsRevision"`
	ApprovalRate         float64 `json:"approvalRate"`
	TotalDurationMinutes int64   `json:"totalDurationMinutes"`
}

// RollupBucketResponse is one time bucket of a daily/weekly/monthly rollup.
type RollupBucketResponse struct {
	Key             string    `json:"key"`
	Start           time.Time `json:"start"`
	Pending         int       `json:"pending"`
	Approved        int       `json:"approved"`
	Rejected        int       `json:"rejected"`
	NeedsRevision   int       `json:"needsRevision"`
	DurationMinutes int64     `json:"durationMinutes"`
}

// RollupResponse is the full rollup report.
type RollupResponse struct {
	Period  string                 `json:"period"`
	Buckets []RollupBucketResponse `json:"buckets"`
}

// ToEntrySummaryResponse converts a domain.EntrySummary to its DTO.
func ToEntrySummaryResponse(s *domain.EntrySummary) EntrySummaryResponse {
	return EntrySummaryResponse{
		Pending:              s.Counts.Pending,
		Approved:             s.Counts.Approved,
		Rejected:             s.Counts.Rejected,
		NeedsRevision:        s.Counts.NeedsRevision,
		ApprovalRate:         s.ApprovalRate,
		TotalDurationMinutes: int64(s.TotalDuration.Minutes()),
	}
}

// ToRollupResponse converts rollup buckets to the report DTO.
func ToRollupResponse(period domain.RollupPeriod, buckets []domain.RollupBucket) RollupResponse {
	resp := RollupResponse{Period: string(period), Buckets: make([]RollupBucketResponse, len(buckets))}
	for i, b := range buckets {
		resp.Buckets[i] = RollupBucketResponse{
			Key:             b.Key,
			Start:           b.Start,
			Pending:         b.Counts.Pending,
			Approved:        b.Counts.Approved,
			Rejected:        b.Counts.Rejected,
			NeedsRevision:   b.Counts.NeedsRevision,
			DurationMinutes: int64(b.Duration.Minutes()),
		}
	}
	return resp
}
