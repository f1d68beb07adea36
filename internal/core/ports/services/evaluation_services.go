package services

import (
	"context"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
)

// EvaluationSvcFacade manages end-of-internship evaluations.
type EvaluationSvcFacade interface {
	// UpsertEvaluation creates or replaces the evaluation for a participant.
	// Only reviewers may evaluate.
	UpsertEvaluation(ctx context.Context, participantID string, req dto.UpsertEvaluationRequest, actor domain.Actor) (*domain.Evaluation, error)

	// GetEvaluation returns the evaluation report, including the weighted
	// final score, the participant's logbook approval rate, and certificate
	// eligibility.
	GetEvaluation(ctx context.Context, participantID string, actor domain.Actor) (*dto.EvaluationResponse, error)
}
