package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/mapping"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/pagination"
)

const entryColumns = `entry_id, participant_id, entry_type, entry_date, start_time, end_time,
	       description, status, reviewer_note, reviewed_by, reviewed_at,
	       created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry and ledger data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryWithTx
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.ParticipantID,
		&m.EntryType,
		&m.Date,
		&m.StartTime,
		&m.EndTime,
		&m.Description,
		&m.Status,
		&m.ReviewerNote,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// insertHistoryEventTx appends one ledger row inside the caller's transaction.
// Entry writes call this so the mutation and its ledger row commit together.
func insertHistoryEventTx(ctx context.Context, tx pgx.Tx, event domain.HistoryEvent) error {
	m := mapping.ToModelHistoryEvent(event)
	query := `
		INSERT INTO entry_history (event_id, entry_id, actor_id, action, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query, m.EventID, m.EntryID, m.ActorID, m.Action, m.Note, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history event %s: %w", m.EventID, err)
	}
	return nil
}

// SaveEntry persists a new entry and its CREATE history event atomically.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, event domain.HistoryEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (
			entry_id, participant_id, entry_type, entry_date, start_time, end_time,
			description, status, reviewer_note, reviewed_by, reviewed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.ParticipantID,
		m.EntryType,
		m.Date,
		m.StartTime,
		m.EndTime,
		m.Description,
		m.Status,
		m.ReviewerNote,
		m.ReviewedBy,
		m.ReviewedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry %s: %w", m.EntryID, err)
	}

	if err := insertHistoryEventTx(ctx, tx, event); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry by its ID. Soft-deleted entries are not returned.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainEntry(*m)
	return &domainEntry, nil
}

// buildFilterClauses translates the filter into WHERE clauses and arguments,
// continuing placeholder numbering from argIdx.
func buildFilterClauses(filter portsrepo.EntryFilter, argIdx int) ([]string, []any, int) {
	var clauses []string
	var args []any

	if !filter.IncludeDeleted {
		clauses = append(clauses, "deleted_at IS NULL")
	}
	if filter.ParticipantID != nil {
		clauses = append(clauses, "participant_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filter.ParticipantID)
		argIdx++
	}
	if filter.EntryType != nil {
		clauses = append(clauses, "entry_type = $"+strconv.Itoa(argIdx))
		args = append(args, string(*filter.EntryType))
		argIdx++
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = $"+strconv.Itoa(argIdx))
		args = append(args, string(*filter.Status))
		argIdx++
	}
	if filter.DateFrom != nil {
		clauses = append(clauses, "entry_date >= $"+strconv.Itoa(argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		clauses = append(clauses, "entry_date <= $"+strconv.Itoa(argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	return clauses, args, argIdx
}

func collectEntries(rows pgx.Rows) ([]models.Entry, error) {
	defer rows.Close()
	var entries []models.Entry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating entry rows: %w", err)
	}
	return entries, nil
}

// QueryEntries retrieves all entries matching the filter, ordered by date ascending.
func (r *PgxEntryRepository) QueryEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.Entry, error) {
	clauses, args, _ := buildFilterClauses(filter, 1)

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY entry_date ASC, entry_id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEntrySlice(entries), nil
}

// ListEntries retrieves a page of entries matching the filter using keyset
// pagination over (entry_date, entry_id).
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	clauses, args, argIdx := buildFilterClauses(filter, 1)

	if nextToken != nil && *nextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		clauses = append(clauses, fmt.Sprintf("(entry_date, entry_id) > ($%d, $%d)", argIdx, argIdx+1))
		args = append(args, afterDate, afterID)
		argIdx += 2
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	// Fetch limit+1 to know whether another page exists.
	query += " ORDER BY entry_date ASC, entry_id ASC LIMIT $" + strconv.Itoa(argIdx) + ";"
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.Date, last.EntryID)
		token = &t
	}

	return mapping.ToDomainEntrySlice(entries), token, nil
}

// HasEntryOnDate reports whether the participant already has a non-deleted
// entry of one of the given types on the given date.
func (r *PgxEntryRepository) HasEntryOnDate(ctx context.Context, participantID string, date time.Time, types []domain.EntryType) (bool, error) {
	typeStrs := make([]string, len(types))
	for i, t := range types {
		typeStrs[i] = string(t)
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM entries
			WHERE participant_id = $1 AND entry_date = $2 AND entry_type = ANY($3) AND deleted_at IS NULL
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, participantID, date, typeStrs).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entry existence on date: %w", err)
	}
	return exists, nil
}

// ApplyTransition updates the mutable fields of an entry guarded by the
// status the caller observed and appends the history event in the same
// transaction. A guard miss (zero rows updated) means a concurrent
// transition won; nothing is written and ErrConflict is returned.
func (r *PgxEntryRepository) ApplyTransition(ctx context.Context, entry domain.Entry, fromStatus domain.EntryStatus, event domain.HistoryEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE entries
		SET start_time = $1,
		    end_time = $2,
		    description = $3,
		    status = $4,
		    reviewer_note = $5,
		    reviewed_by = $6,
		    reviewed_at = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE entry_id = $10 AND status = $11 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		m.StartTime,
		m.EndTime,
		m.Description,
		m.Status,
		m.ReviewerNote,
		m.ReviewedBy,
		m.ReviewedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntryID,
		string(fromStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s was not in status %s", apperrors.ErrConflict, m.EntryID, fromStatus)
	}

	if err := insertHistoryEventTx(ctx, tx, event); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteEntry marks the entry deleted guarded by the observed status and
// appends the DELETE history event in the same transaction.
func (r *PgxEntryRepository) SoftDeleteEntry(ctx context.Context, entryID string, fromStatus domain.EntryStatus, deletedBy string, deletedAt time.Time, event domain.HistoryEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE entries
		SET deleted_at = $1,
		    last_updated_at = $1,
		    last_updated_by = $2
		WHERE entry_id = $3 AND status = $4 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, deletedAt, deletedBy, entryID, string(fromStatus))
	if err != nil {
		return fmt.Errorf("failed to soft-delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s was not in status %s", apperrors.ErrConflict, entryID, fromStatus)
	}

	if err := insertHistoryEventTx(ctx, tx, event); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
