package repositories

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// EvaluationReader defines read operations for evaluation data
type EvaluationReader interface {
	// FindEvaluationByID retrieves an evaluation with its scores.
	FindEvaluationByID(ctx context.Context, evaluationID string) (*domain.Evaluation, error)

	// FindEvaluationByParticipant retrieves the evaluation for a participant,
	// with its scores, or apperrors.ErrNotFound when none exists.
	FindEvaluationByParticipant(ctx context.Context, participantID string) (*domain.Evaluation, error)
}

// EvaluationWriter defines write operations for evaluation data
type EvaluationWriter interface {
	// SaveEvaluation persists an evaluation and all its scores atomically.
	SaveEvaluation(ctx context.Context, evaluation domain.Evaluation) error

	// UpdateEvaluation replaces the comment and scores of an evaluation atomically.
	UpdateEvaluation(ctx context.Context, evaluation domain.Evaluation) error
}

// EvaluationRepositoryFacade combines the evaluation repository interfaces
type EvaluationRepositoryFacade interface {
	EvaluationReader
	EvaluationWriter
}
