package services

import (
	"context"
	"io"
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// StatisticsSvcFacade computes read-side aggregates over a filtered entry
// set. All methods are side-effect free and tolerate an empty result set.
type StatisticsSvcFacade interface {
	// CountByStatus returns per-status counts for the filtered set.
	CountByStatus(ctx context.Context, filter dto.EntryReportFilter) (domain.EntryStatusCounts, error)

	// ApprovalRate returns approved/total for the filtered set, 0 when empty.
	ApprovalRate(ctx context.Context, filter dto.EntryReportFilter) (float64, error)

	// TotalDuration sums the activity windows of the filtered set. Entries
	// missing either boundary contribute zero.
	TotalDuration(ctx context.Context, filter dto.EntryReportFilter) (time.Duration, error)

	// Summarize returns the combined dashboard report for the filtered set.
	Summarize(ctx context.Context, filter dto.EntryReportFilter) (*domain.EntrySummary, error)

	// Rollup buckets the filtered set by day, ISO week, or month of the entry
	// date and returns the buckets in chronological order.
	Rollup(ctx context.Context, filter dto.EntryReportFilter, period domain.RollupPeriod) ([]domain.RollupBucket, error)

	// ExportCSV writes the filtered entry set as CSV.
	ExportCSV(ctx context.Context, filter dto.EntryReportFilter, w io.Writer) error
}
