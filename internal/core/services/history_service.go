package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// historyService reads the audit ledger. It has no write path on purpose;
// ledger rows are appended only inside entry transitions.
type historyService struct {
	historyRepo portsrepo.HistoryReader
	entryRepo   portsrepo.EntryReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo portsrepo.HistoryReader, entryRepo portsrepo.EntryReader) portssvc.HistorySvcFacade {
	return &historyService{
		historyRepo: historyRepo,
		entryRepo:   entryRepo,
	}
}

// Ensure historyService implements the portssvc.HistorySvcFacade interface
var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// GetEntryHistory retrieves the audit trail for an entry, oldest first.
// Participants may read the history of their own entries only.
// Implements portssvc.HistorySvcFacade
func (s *historyService) GetEntryHistory(ctx context.Context, entryID string, actor domain.Actor) ([]domain.HistoryEvent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry for history read", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if !actor.IsReviewer && entry.ParticipantID != actor.ActorID {
		return nil, apperrors.ErrNotFound // Obscure existence
	}

	events, err := s.historyRepo.FindEventsByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to read entry history", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to read entry history: %w", err)
	}
	return events, nil
}
