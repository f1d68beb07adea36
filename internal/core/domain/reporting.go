package domain

import "time"

// EntryStatusCounts holds per-status entry counts for a filtered set.
type EntryStatusCounts struct {
	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	Rejected      int `json:"rejected"`
	NeedsRevision int `json:"needsRevision"`
}

// Total returns the number of entries across all statuses.
func (c EntryStatusCounts) Total() int {
	return c.Pending + c.Approved + c.Rejected + c.NeedsRevision
}

// EntrySummary is the dashboard report shape for a filtered entry set.
type EntrySummary struct {
	Counts        EntryStatusCounts `json:"counts"`
	ApprovalRate  float64           `json:"approvalRate"`  // approved / total, 0 when total is 0
	TotalDuration time.Duration     `json:"totalDuration"` // sum over entries with a complete window
}

// RollupPeriod selects the bucket width for time-bucketed rollups.
type RollupPeriod string

const (
	RollupDaily   RollupPeriod = "DAILY"
	RollupWeekly  RollupPeriod = "WEEKLY"
	RollupMonthly RollupPeriod = "MONTHLY"
)

// RollupBucket aggregates entries sharing one bucket key. The key is
// derived from the entry date only, never the creation timestamp.
type RollupBucket struct {
	Key      string            `json:"key"`   // e.g. "2026-02-14", "2026-W07", "2026-02"
	Start    time.Time         `json:"start"` // first day covered by the bucket
	Counts   EntryStatusCounts `json:"counts"`
	Duration time.Duration     `json:"duration"`
}
