package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// statisticsService computes read-side aggregates over the entry set. It is
// derived state only: every number is recomputed from the filtered entries,
// nothing is cached or stored.
type statisticsService struct {
	entryRepo portsrepo.EntryReader
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(entryRepo portsrepo.EntryReader) portssvc.StatisticsSvcFacade {
	return &statisticsService{entryRepo: entryRepo}
}

// Ensure statisticsService implements the portssvc.StatisticsSvcFacade interface
var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

func toEntryFilter(f dto.EntryReportFilter) portsrepo.EntryFilter {
	filter := portsrepo.EntryFilter{
		ParticipantID: f.ParticipantID,
		DateFrom:      f.DateFrom,
		DateTo:        f.DateTo,
	}
	if f.EntryType != nil {
		t := domain.EntryType(*f.EntryType)
		filter.EntryType = &t
	}
	return filter
}

func (s *statisticsService) queryEntries(ctx context.Context, filter dto.EntryReportFilter) ([]domain.Entry, error) {
	entries, err := s.entryRepo.QueryEntries(ctx, toEntryFilter(filter))
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to query entries for report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return entries, nil
}

func countByStatus(entries []domain.Entry) domain.EntryStatusCounts {
	var counts domain.EntryStatusCounts
	for _, e := range entries {
		switch e.Status {
		case domain.Pending:
			counts.Pending++
		case domain.Approved:
			counts.Approved++
		case domain.Rejected:
			counts.Rejected++
		case domain.NeedsRevision:
			counts.NeedsRevision++
		}
	}
	return counts
}

// CountByStatus returns per-status counts for the filtered set.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) CountByStatus(ctx context.Context, filter dto.EntryReportFilter) (domain.EntryStatusCounts, error) {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return domain.EntryStatusCounts{}, err
	}
	return countByStatus(entries), nil
}

// ApprovalRate returns approved/total for the filtered set, 0 when empty.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) ApprovalRate(ctx context.Context, filter dto.EntryReportFilter) (float64, error) {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return 0, err
	}
	counts := countByStatus(entries)
	return approvalRate(counts), nil
}

func approvalRate(counts domain.EntryStatusCounts) float64 {
	total := counts.Total()
	if total == 0 {
		return 0
	}
	return float64(counts.Approved) / float64(total)
}

// TotalDuration sums the activity windows of the filtered set. Entries
// missing either boundary contribute zero.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) TotalDuration(ctx context.Context, filter dto.EntryReportFilter) (time.Duration, error) {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for i := range entries {
		total += entries[i].Duration()
	}
	return total, nil
}

// Summarize returns the combined dashboard report for the filtered set.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) Summarize(ctx context.Context, filter dto.EntryReportFilter) (*domain.EntrySummary, error) {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts := countByStatus(entries)
	var total time.Duration
	for i := range entries {
		total += entries[i].Duration()
	}
	return &domain.EntrySummary{
		Counts:        counts,
		ApprovalRate:  approvalRate(counts),
		TotalDuration: total,
	}, nil
}

// bucketKey derives the rollup key and bucket start from the entry date.
// Weekly buckets follow ISO 8601, keyed "YYYY-Www" and starting on Monday.
func bucketKey(date time.Time, period domain.RollupPeriod) (string, time.Time) {
	d := date.UTC()
	switch period {
	case domain.RollupWeekly:
		year, week := d.ISOWeek()
		// Walk back to the Monday of the ISO week.
		offset := (int(d.Weekday()) + 6) % 7
		start := time.Date(d.Year(), d.Month(), d.Day()-offset, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%04d-W%02d", year, week), start
	case domain.RollupMonthly:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return d.Format("2006-01"), start
	default:
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		return d.Format("2006-01-02"), start
	}
}

// Rollup buckets the filtered set by day, ISO week, or month of the entry
// date and returns the buckets in chronological order. Buckets with no
// entries are omitted.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) Rollup(ctx context.Context, filter dto.EntryReportFilter, period domain.RollupPeriod) ([]domain.RollupBucket, error) {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*domain.RollupBucket)
	for i := range entries {
		e := &entries[i]
		key, start := bucketKey(e.Date, period)
		b, ok := buckets[key]
		if !ok {
			b = &domain.RollupBucket{Key: key, Start: start}
			buckets[key] = b
		}
		switch e.Status {
		case domain.Pending:
			b.Counts.Pending++
		case domain.Approved:
			b.Counts.Approved++
		case domain.Rejected:
			b.Counts.Rejected++
		case domain.NeedsRevision:
			b.Counts.NeedsRevision++
		}
		b.Duration += e.Duration()
	}

	result := make([]domain.RollupBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result, nil
}

// ExportCSV writes the filtered entry set as CSV, one row per entry,
// ordered by entry date ascending.
// Implements portssvc.StatisticsSvcFacade
func (s *statisticsService) ExportCSV(ctx context.Context, filter dto.EntryReportFilter, w io.Writer) error {
	entries, err := s.queryEntries(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"entry_id", "participant_id", "entry_type", "date", "status", "duration_minutes", "description", "reviewer_note", "reviewed_by", "reviewed_at"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		reviewedBy, reviewedAt := "", ""
		if e.ReviewedBy != nil {
			reviewedBy = *e.ReviewedBy
		}
		if e.ReviewedAt != nil {
			reviewedAt = e.ReviewedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			e.EntryID,
			e.ParticipantID,
			string(e.EntryType),
			e.Date.Format("2006-01-02"),
			string(e.Status),
			strconv.FormatInt(int64(e.Duration().Minutes()), 10),
			e.Description,
			e.ReviewerNote,
			reviewedBy,
			reviewedAt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Entry report exported", slog.Int("rows", len(entries)))
	return nil
}
