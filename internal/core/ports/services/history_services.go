package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// HistorySvcFacade exposes the audit ledger read side. Writes happen only
// inside entry transitions.
type HistorySvcFacade interface {
	// GetEntryHistory retrieves the audit trail for an entry, oldest first.
	// The owning participant and reviewers may read it.
	GetEntryHistory(ctx context.Context, entryID string, actor domain.Actor) ([]domain.HistoryEvent, error)
}
