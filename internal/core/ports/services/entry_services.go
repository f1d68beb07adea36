package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// EntryReaderSvc defines read operations for entry data
type EntryReaderSvc interface {
	// GetEntryByID retrieves a specific entry. Participants see only their own
	// entries; reviewers see all.
	GetEntryByID(ctx context.Context, entryID string, actor domain.Actor) (*domain.Entry, error)

	// ListEntries retrieves a paginated, filtered list of entries.
	ListEntries(ctx context.Context, actor domain.Actor, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines the participant-side operations of the workflow
type EntryWriterSvc interface {
	// CreateEntry validates and persists a new pending entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actor domain.Actor) (*domain.Entry, error)

	// ResubmitEntry edits a rejected or needs-revision entry and returns it to
	// pending. Review fields are cleared; re-review is mandatory even when the
	// content did not change.
	ResubmitEntry(ctx context.Context, entryID string, req dto.ResubmitEntryRequest, actor domain.Actor) (*domain.Entry, error)

	// DeleteEntry soft-deletes a pending or needs-revision entry owned by the actor.
	DeleteEntry(ctx context.Context, entryID string, actor domain.Actor) error
}

// EntryReviewerSvc defines the reviewer-side transitions of the workflow.
// Each returns a ReviewResult whose Warning is set when the transition
// committed but the participant notification failed.
type EntryReviewerSvc interface {
	// ApproveEntry moves a pending entry to approved.
	ApproveEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error)

	// RejectEntry moves a pending entry to rejected. The note is mandatory.
	RejectEntry(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error)

	// RequestRevision moves a pending entry to needs-revision. The note is mandatory.
	RequestRevision(ctx context.Context, entryID string, req dto.ReviewRequest, actor domain.Actor) (*dto.ReviewResult, error)
}

// EntrySvcFacade combines all entry workflow interfaces
// This is a facade for clients that need access to all operations
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntryReviewerSvc
}
