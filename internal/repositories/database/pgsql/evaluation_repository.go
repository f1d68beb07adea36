package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
	"github.com/wisnuad/internship_mgmt_app/internal/utils/mapping"
)

type PgxEvaluationRepository struct {
	BaseRepository
}

func newPgxEvaluationRepository(pool *pgxpool.Pool) portsrepo.EvaluationRepositoryFacade {
	return &PgxEvaluationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEvaluationRepository implements portsrepo.EvaluationRepositoryFacade
var _ portsrepo.EvaluationRepositoryFacade = (*PgxEvaluationRepository)(nil)

// insertScoresTx batch-inserts the criterion scores inside the caller's transaction.
func insertScoresTx(ctx context.Context, tx pgx.Tx, scores []models.EvaluationScore) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO evaluation_scores (score_id, evaluation_id, criterion, score, weight)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, s := range scores {
		batch.Queue(query, s.ScoreID, s.EvaluationID, s.Criterion, s.Score, s.Weight)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute score insert batch: %w", err)
	}
	return nil
}

// SaveEvaluation persists an evaluation and all its scores atomically.
func (r *PgxEvaluationRepository) SaveEvaluation(ctx context.Context, evaluation domain.Evaluation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelEvaluation(evaluation)
	query := `
		INSERT INTO evaluations (evaluation_id, participant_id, evaluator_id, comment, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.EvaluationID,
		m.ParticipantID,
		m.EvaluatorID,
		m.Comment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation %s: %w", m.EvaluationID, err)
	}

	if err := insertScoresTx(ctx, tx, mapping.ToModelEvaluationScores(evaluation.Scores)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEvaluation replaces the comment and scores of an evaluation
// atomically. Existing score rows are dropped and re-inserted.
func (r *PgxEvaluationRepository) UpdateEvaluation(ctx context.Context, evaluation domain.Evaluation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelEvaluation(evaluation)
	query := `
		UPDATE evaluations
		SET evaluator_id = $1,
		    comment = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE evaluation_id = $5;
	`
	tag, err := tx.Exec(ctx, query, m.EvaluatorID, m.Comment, m.LastUpdatedAt, m.LastUpdatedBy, m.EvaluationID)
	if err != nil {
		return fmt.Errorf("failed to update evaluation %s: %w", m.EvaluationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM evaluation_scores WHERE evaluation_id = $1;`, m.EvaluationID); err != nil {
		return fmt.Errorf("failed to clear scores for evaluation %s: %w", m.EvaluationID, err)
	}
	if err := insertScoresTx(ctx, tx, mapping.ToModelEvaluationScores(evaluation.Scores)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEvaluationRepository) findEvaluation(ctx context.Context, whereClause string, arg any) (*domain.Evaluation, error) {
	query := `
		SELECT evaluation_id, participant_id, evaluator_id, comment, created_at, created_by, last_updated_at, last_updated_by
		FROM evaluations
		WHERE ` + whereClause + `;
	`
	var m models.Evaluation
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.EvaluationID,
		&m.ParticipantID,
		&m.EvaluatorID,
		&m.Comment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}

	scoreQuery := `
		SELECT score_id, evaluation_id, criterion, score, weight
		FROM evaluation_scores
		WHERE evaluation_id = $1
		ORDER BY criterion ASC;
	`
	rows, err := r.Pool.Query(ctx, scoreQuery, m.EvaluationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores for evaluation %s: %w", m.EvaluationID, err)
	}
	defer rows.Close()

	var scores []models.EvaluationScore
	for rows.Next() {
		var s models.EvaluationScore
		if err := rows.Scan(&s.ScoreID, &s.EvaluationID, &s.Criterion, &s.Score, &s.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating score rows: %w", err)
	}

	evaluation := mapping.ToDomainEvaluation(m, scores)
	return &evaluation, nil
}

// FindEvaluationByID retrieves an evaluation with its scores.
func (r *PgxEvaluationRepository) FindEvaluationByID(ctx context.Context, evaluationID string) (*domain.Evaluation, error) {
	return r.findEvaluation(ctx, "evaluation_id = $1", evaluationID)
}

// FindEvaluationByParticipant retrieves the evaluation for a participant.
// There is at most one per participant.
func (r *PgxEvaluationRepository) FindEvaluationByParticipant(ctx context.Context, participantID string) (*domain.Evaluation, error) {
	return r.findEvaluation(ctx, "participant_id = $1", participantID)
}
