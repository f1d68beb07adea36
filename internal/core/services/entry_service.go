package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition for entry")
	ErrNotEntryOwner     = errors.New("only the owning participant may perform this operation")
	ErrReviewerRequired  = errors.New("reviewer capability required")
)

const (
	minDescriptionLength = 20
	minReviewNoteLength  = 20
	maxActivityWindow    = 12 * time.Hour
)

// entryService implements the approval workflow: it is the single place
// where entry status moves. Every transition bundles the entry mutation and
// the ledger append into one repository transaction; the participant
// notification runs after commit and never rolls a transition back.
type entryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	notifier  portssvc.NotifierSvc
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, notifier portssvc.NotifierSvc) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo: entryRepo,
		notifier:  notifier,
	}
}

// Ensure entryService implements the portssvc.EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// truncateToDay normalises a timestamp to midnight UTC so that calendar-date
// comparisons ignore the time of day.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validateContent checks the description and activity window rules shared by
// creation and resubmission. It returns a ValidationFailed error enumerating
// every violated constraint.
func (s *entryService) validateContent(description string, startTime, endTime *time.Time) error {
	var violations []string

	if len(strings.TrimSpace(description)) < minDescriptionLength {
		violations = append(violations, fmt.Sprintf("description must be at least %d characters", minDescriptionLength))
	}

	switch {
	case startTime == nil && endTime == nil:
		// Window is optional.
	case startTime == nil || endTime == nil:
		violations = append(violations, "startTime and endTime must be provided together")
	default:
		if !endTime.After(*startTime) {
			violations = append(violations, "endTime must be after startTime")
		} else if endTime.Sub(*startTime) > maxActivityWindow {
			violations = append(violations, fmt.Sprintf("activity window must not exceed %s", maxActivityWindow))
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(violations, "; "))
	}
	return nil
}

// CreateEntry validates and persists a new pending entry together with its
// CREATE ledger event.
// Implements portssvc.EntryWriterSvc
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actor domain.Actor) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	entryDate := truncateToDay(req.Date)

	if entryDate.After(truncateToDay(now)) {
		return nil, fmt.Errorf("%w: date must not be in the future", apperrors.ErrValidation)
	}
	if err := s.validateContent(req.Description, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	entryType := domain.EntryType(req.EntryType)

	// A leave record must not coexist with an attendance record for the same
	// participant and date. The guard runs when the leave is created; it never
	// retroactively invalidates existing records.
	if entryType == domain.Leave {
		exists, err := s.entryRepo.HasEntryOnDate(ctx, actor.ActorID, entryDate, []domain.EntryType{domain.Attendance})
		if err != nil {
			logger.Error("Failed to check attendance overlap for leave entry", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check attendance overlap: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: attendance is already recorded for %s", apperrors.ErrValidation, entryDate.Format("2006-01-02"))
		}
	}

	entry := domain.Entry{
		EntryID:       uuid.NewString(),
		ParticipantID: actor.ActorID,
		EntryType:     entryType,
		Date:          entryDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Description:   req.Description,
		Status:        domain.Pending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	event := domain.HistoryEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.EntryID,
		ActorID:   actor.ActorID,
		Action:    domain.ActionCreate,
		CreatedAt: now,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, event); err != nil {
		logger.Error("Failed to save entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Entry created", slog.String("entry_id", entry.EntryID), slog.String("entry_type", string(entry.EntryType)))
	return &entry, nil
}

// GetEntryByID retrieves a specific entry. Participants see only their own
// entries; existence of foreign entries is obscured as NotFound.
// Implements portssvc.EntryReaderSvc
func (s *entryService) GetEntryByID(ctx context.Context, entryID string, actor domain.Actor) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if !actor.IsReviewer && entry.ParticipantID != actor.ActorID {
		logger.Warn("Participant requested entry owned by someone else", slog.String("entry_id", entryID))
		return nil, apperrors.ErrNotFound // Obscure existence
	}

	return entry, nil
}

// ListEntries retrieves a paginated, filtered list of entries. Participants
// are always scoped to their own entries regardless of the requested filter.
// Implements portssvc.EntryReaderSvc
func (s *entryService) ListEntries(ctx context.Context, actor domain.Actor, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := portsrepo.EntryFilter{
		ParticipantID: params.ParticipantID,
		DateFrom:      params.DateFrom,
		DateTo:        params.DateTo,
	}
	if !actor.IsReviewer {
		filter.ParticipantID = &actor.ActorID
	}
	if params.EntryType != nil {
		t := domain.EntryType(*params.EntryType)
		filter.EntryType = &t
	}
	if params.Status != nil {
		st := domain.EntryStatus(*params.Status)
		filter.Status = &st
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	resp := &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}
	logger.Debug("Entries listed", slog.Int("count", len(entries)))
	return resp, nil
}

// review applies one reviewer transition (approve/reject/request-revision)
// from PENDING. Validation runs before the state guard; the repository
// enforces the guard again atomically so a concurrent reviewer cannot apply
// the same transition twice.
func (s *entryService) review(ctx context.Context, entryID string, note string, actor domain.Actor, action domain.HistoryAction, toStatus domain.EntryStatus, noteRequired bool) (*dto.ReviewResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsReviewer {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrReviewerRequired)
	}

	if noteRequired && len(strings.TrimSpace(note)) < minReviewNoteLength {
		return nil, fmt.Errorf("%w: reviewer note must be at least %d characters", apperrors.ErrValidation, minReviewNoteLength)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry for review", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.Status != domain.Pending {
		return nil, fmt.Errorf("%w: current status is %s, expected %s", ErrInvalidTransition, entry.Status, domain.Pending)
	}

	// Defense in depth: an entry must not be approved while its date is still
	// in the future, even though creation already refused future dates.
	now := time.Now().UTC()
	if action == domain.ActionApprove && truncateToDay(entry.Date).After(truncateToDay(now)) {
		return nil, fmt.Errorf("%w: date must not be in the future", apperrors.ErrValidation)
	}

	entry.Status = toStatus
	entry.ReviewerNote = note
	entry.ReviewedBy = &actor.ActorID
	entry.ReviewedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.ActorID

	event := domain.HistoryEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.EntryID,
		ActorID:   actor.ActorID,
		Action:    action,
		Note:      note,
		CreatedAt: now,
	}

	if err := s.entryRepo.ApplyTransition(ctx, *entry, domain.Pending, event); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent transition won the race; report the status it left behind.
			current, ferr := s.entryRepo.FindEntryByID(ctx, entryID)
			if ferr == nil {
				return nil, fmt.Errorf("%w: current status is %s, expected %s", ErrInvalidTransition, current.Status, domain.Pending)
			}
			return nil, fmt.Errorf("%w: entry is no longer %s", ErrInvalidTransition, domain.Pending)
		}
		logger.Error("Failed to apply review transition", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to apply transition: %w", err)
	}

	logger.Info("Entry reviewed", slog.String("entry_id", entryID), slog.String("action", string(action)))

	result := &dto.ReviewResult{Entry: dto.ToEntryResponse(entry)}
	title, body := reviewNotification(action, entry)
	if err := s.notifier.Notify(ctx, entry.ParticipantID, title, body, domain.NotifyApproval); err != nil {
		// The transition is committed; delivery is retried out-of-band.
		logger.Warn("Failed to deliver review notification", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		result.Warning = "entry was reviewed but the participant notification could not be delivered"
	}
	return result, nil
}

// reviewNotification builds the participant-facing notice for a review action.
func reviewNotification(action domain.HistoryAction, entry *domain.Entry) (title, body string) {
	date := entry.Date.Format("2006-01-02")
	switch action {
	case domain.ActionApprove:
		return "Entry approved", fmt.Sprintf("Your %s entry for %s was approved.", strings.ToLower(string(entry.EntryType)), date)
	case domain.ActionReject:
		return "Entry rejected", fmt.Sprintf("Your %s entry for %s was rejected: %s", strings.ToLower(string(entry.EntryType)), date, entry.ReviewerNote)
	default:
		return "Revision requested", fmt.Sprintf("Your %s entry for %s needs revision: %s", strings.ToLower(string(entry.EntryType)), date, entry.ReviewerNote)
	}
}

// ApproveEntry moves a pending entry to approved.
// Implements portssvc.EntryReviewerSvc
func (s *entryService) ApproveEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	return s.review(ctx, entryID, req.Note, actor, domain.ActionApprove, domain.Approved, false)
}

// RejectEntry moves a pending entry to rejected. The note is mandatory so
// the participant knows what to fix.
// Implements portssvc.EntryReviewerSvc
func (s *entryService) RejectEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	return s.review(ctx, entryID, req.Note, actor, domain.ActionReject, domain.Rejected, true)
}

// RequestRevision moves a pending entry to needs-revision. The note is mandatory.
// Implements portssvc.EntryReviewerSvc
func (s *entryService) RequestRevision(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error) {
	return s.review(ctx, entryID, req.Note, actor, domain.ActionRevision, domain.NeedsRevision, true)
}

// ResubmitEntry edits a rejected or needs-revision entry and returns it to
// pending. Review fields are cleared and re-review is mandatory even when
// the content did not change.
// Implements portssvc.EntryWriterSvc
func (s *entryService) ResubmitEntry(ctx context.Context, entryID string, req dto.ResubmitEntryRequest, actor domain.Actor) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry for resubmission", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.ParticipantID != actor.ActorID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrNotEntryOwner)
	}
	if entry.Status != domain.Rejected && entry.Status != domain.NeedsRevision {
		return nil, fmt.Errorf("%w: current status is %s, expected %s or %s", ErrInvalidTransition, entry.Status, domain.Rejected, domain.NeedsRevision)
	}

	if err := s.validateContent(req.Description, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	observedStatus := entry.Status

	entry.Description = req.Description
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime
	entry.Status = domain.Pending
	entry.ReviewerNote = ""
	entry.ReviewedBy = nil
	entry.ReviewedAt = nil
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.ActorID

	event := domain.HistoryEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.EntryID,
		ActorID:   actor.ActorID,
		Action:    domain.ActionUpdate,
		CreatedAt: now,
	}

	if err := s.entryRepo.ApplyTransition(ctx, *entry, observedStatus, event); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: entry is no longer %s", ErrInvalidTransition, observedStatus)
		}
		logger.Error("Failed to resubmit entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to resubmit entry: %w", err)
	}

	logger.Info("Entry resubmitted", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry soft-deletes a pending or needs-revision entry owned by the
// actor. Approved entries are never deletable so statistics keep their audit
// trail; rejected entries must be resubmitted instead.
// Implements portssvc.EntryWriterSvc
func (s *entryService) DeleteEntry(ctx context.Context, entryID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry for deletion", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return err
	}

	if entry.ParticipantID != actor.ActorID {
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrNotEntryOwner)
	}
	if entry.Status != domain.Pending && entry.Status != domain.NeedsRevision {
		return fmt.Errorf("%w: current status is %s, expected %s or %s", ErrInvalidTransition, entry.Status, domain.Pending, domain.NeedsRevision)
	}

	now := time.Now().UTC()
	event := domain.HistoryEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.EntryID,
		ActorID:   actor.ActorID,
		Action:    domain.ActionDelete,
		CreatedAt: now,
	}

	if err := s.entryRepo.SoftDeleteEntry(ctx, entryID, entry.Status, actor.ActorID, now, event); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: entry is no longer %s", ErrInvalidTransition, entry.Status)
		}
		logger.Error("Failed to soft-delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	return nil
}
