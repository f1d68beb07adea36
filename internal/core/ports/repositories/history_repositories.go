package repositories

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// HistoryReader defines read operations for the audit ledger
type HistoryReader interface {
	// FindEventsByEntryID retrieves all history events for an entry, oldest first.
	FindEventsByEntryID(ctx context.Context, entryID string) ([]domain.HistoryEvent, error)
}

// HistoryWriter defines the append operation for the audit ledger. There is
// deliberately no update or delete; the ledger is append-only.
type HistoryWriter interface {
	// SaveHistoryEvent appends exactly one immutable event row.
	SaveHistoryEvent(ctx context.Context, event domain.HistoryEvent) error
}

// HistoryRepositoryFacade combines the ledger repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
