package repositories

import (
	"context"
	"time"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// EntryFilter narrows entry reads by participant, type, status, and date
// range. Nil fields are ignored. Soft-deleted entries are excluded unless
// IncludeDeleted is set.
type EntryFilter struct {
	ParticipantID  *string
	EntryType      *domain.EntryType
	Status         *domain.EntryStatus
	DateFrom       *time.Time
	DateTo         *time.Time
	IncludeDeleted bool
}

// EntryReader defines read operations for entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// QueryEntries retrieves all entries matching the filter, ordered by date ascending.
	QueryEntries(ctx context.Context, filter EntryFilter) ([]domain.Entry, error)

	// ListEntries retrieves a paginated list of entries matching the filter using
	// token-based pagination. It returns the entries, a token for the next page,
	// and an error.
	ListEntries(ctx context.Context, filter EntryFilter, limit int, nextToken *string) ([]domain.Entry, *string, error)

	// HasEntryOnDate reports whether the participant already has a non-deleted
	// entry of one of the given types on the given date.
	HasEntryOnDate(ctx context.Context, participantID string, date time.Time, types []domain.EntryType) (bool, error)
}

// EntryWriter defines write operations for entry data. Every write bundles
// the matching history event in the same database transaction so that a
// transition and its ledger row commit or fail together.
type EntryWriter interface {
	// SaveEntry persists a new entry and its CREATE history event atomically.
	SaveEntry(ctx context.Context, entry domain.Entry, event domain.HistoryEvent) error

	// ApplyTransition updates the mutable fields of an entry guarded by the
	// status the caller observed, and appends the history event in the same
	// transaction. When the guard does not match (a concurrent transition won),
	// it returns an error satisfying errors.Is(err, apperrors.ErrConflict) and
	// writes nothing.
	ApplyTransition(ctx context.Context, entry domain.Entry, fromStatus domain.EntryStatus, event domain.HistoryEvent) error

	// SoftDeleteEntry marks the entry deleted guarded by the observed status and
	// appends the DELETE history event in the same transaction.
	SoftDeleteEntry(ctx context.Context, entryID string, fromStatus domain.EntryStatus, deletedBy string, deletedAt time.Time, event domain.HistoryEvent) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
// This is a facade for clients that need access to all operations
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
