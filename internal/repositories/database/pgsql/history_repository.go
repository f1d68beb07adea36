package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/mapping"
)

type PgxHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{db: db}
}

// Ensure PgxHistoryRepository implements portsrepo.HistoryRepositoryFacade
var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

// FindEventsByEntryID retrieves all history events for an entry, oldest
// first. event_id breaks ties between events sharing a timestamp.
func (r *PgxHistoryRepository) FindEventsByEntryID(ctx context.Context, entryID string) ([]domain.HistoryEvent, error) {
	query := `
		SELECT event_id, entry_id, actor_id, action, note, created_at
		FROM entry_history
		WHERE entry_id = $1
		ORDER BY created_at ASC, event_id ASC;
	`
	rows, err := r.db.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var events []models.HistoryEvent
	for rows.Next() {
		var m models.HistoryEvent
		if err := rows.Scan(&m.EventID, &m.EntryID, &m.ActorID, &m.Action, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history event row: %w", err)
		}
		events = append(events, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating history event rows: %w", err)
	}

	return mapping.ToDomainHistoryEventSlice(events), nil
}

// SaveHistoryEvent appends exactly one immutable event row. There is no
// corresponding update or delete statement anywhere in this repository.
func (r *PgxHistoryRepository) SaveHistoryEvent(ctx context.Context, event domain.HistoryEvent) error {
	m := mapping.ToModelHistoryEvent(event)
	query := `
		INSERT INTO entry_history (event_id, entry_id, actor_id, action, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.EventID, m.EntryID, m.ActorID, m.Action, m.Note, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history event %s: %w", m.EventID, err)
	}
	return nil
}
