package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wisnuad/internship_mgmt_app/internal/apperrors"
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// Certificate eligibility thresholds. The final score is on a 0-100 scale;
// the approval rate covers the participant's logbook entries.
var (
	certificateMinScore        = decimal.NewFromInt(70)
	certificateMinApprovalRate = 0.8
)

var maxCriterionScore = decimal.NewFromInt(100)

// evaluationService manages end-of-internship evaluations. The final score
// and certificate eligibility are derived on read, never stored.
type evaluationService struct {
	evaluationRepo portsrepo.EvaluationRepositoryFacade
	userRepo       portsrepo.UserReader
	statistics     portssvc.StatisticsSvcFacade
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(evaluationRepo portsrepo.EvaluationRepositoryFacade, userRepo portsrepo.UserReader, statistics portssvc.StatisticsSvcFacade) portssvc.EvaluationSvcFacade {
	return &evaluationService{
		evaluationRepo: evaluationRepo,
		userRepo:       userRepo,
		statistics:     statistics,
	}
}

// Ensure evaluationService implements the portssvc.EvaluationSvcFacade interface
var _ portssvc.EvaluationSvcFacade = (*evaluationService)(nil)

func validateScores(scores []dto.EvaluationScoreRequest) error {
	for _, sc := range scores {
		if sc.Score.IsNegative() || sc.Score.GreaterThan(maxCriterionScore) {
			return fmt.Errorf("%w: score for %q must be between 0 and 100", apperrors.ErrValidation, sc.Criterion)
		}
		if !sc.Weight.IsPositive() {
			return fmt.Errorf("%w: weight for %q must be positive", apperrors.ErrValidation, sc.Criterion)
		}
	}
	return nil
}

// UpsertEvaluation creates or replaces the evaluation for a participant.
// Only reviewers may evaluate.
// Implements portssvc.EvaluationSvcFacade
func (s *evaluationService) UpsertEvaluation(ctx context.Context, participantID string, req dto.UpsertEvaluationRequest, actor domain.Actor) (*domain.Evaluation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsReviewer {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrReviewerRequired)
	}
	if err := validateScores(req.Scores); err != nil {
		return nil, err
	}

	participant, err := s.userRepo.FindUserByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant.Role != domain.RoleParticipant {
		return nil, fmt.Errorf("%w: user %s is not a participant", apperrors.ErrValidation, participantID)
	}

	now := time.Now().UTC()

	existing, err := s.evaluationRepo.FindEvaluationByParticipant(ctx, participantID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up existing evaluation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up evaluation: %w", err)
	}

	evaluation := domain.Evaluation{
		ParticipantID: participantID,
		EvaluatorID:   actor.ActorID,
		Comment:       req.Comment,
	}
	if existing != nil {
		evaluation.EvaluationID = existing.EvaluationID
		evaluation.AuditFields = existing.AuditFields
	} else {
		evaluation.EvaluationID = uuid.NewString()
		evaluation.CreatedAt = now
		evaluation.CreatedBy = actor.ActorID
	}
	evaluation.LastUpdatedAt = now
	evaluation.LastUpdatedBy = actor.ActorID

	evaluation.Scores = make([]domain.EvaluationScore, len(req.Scores))
	for i, sc := range req.Scores {
		evaluation.Scores[i] = domain.EvaluationScore{
			ScoreID:      uuid.NewString(),
			EvaluationID: evaluation.EvaluationID,
			Criterion:    sc.Criterion,
			Score:        sc.Score,
			Weight:       sc.Weight,
		}
	}

	if existing != nil {
		err = s.evaluationRepo.UpdateEvaluation(ctx, evaluation)
	} else {
		err = s.evaluationRepo.SaveEvaluation(ctx, evaluation)
	}
	if err != nil {
		logger.Error("Failed to persist evaluation", slog.String("error", err.Error()), slog.String("participant_id", participantID))
		return nil, fmt.Errorf("failed to persist evaluation: %w", err)
	}

	logger.Info("Evaluation upserted", slog.String("participant_id", participantID), slog.String("evaluation_id", evaluation.EvaluationID))
	return &evaluation, nil
}

// GetEvaluation returns the evaluation report for a participant. The
// participant may read their own report; reviewers may read any.
// Implements portssvc.EvaluationSvcFacade
func (s *evaluationService) GetEvaluation(ctx context.Context, participantID string, actor domain.Actor) (*dto.EvaluationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsReviewer && participantID != actor.ActorID {
		return nil, apperrors.ErrNotFound // Obscure existence
	}

	evaluation, err := s.evaluationRepo.FindEvaluationByParticipant(ctx, participantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find evaluation", slog.String("error", err.Error()), slog.String("participant_id", participantID))
		}
		return nil, err
	}

	logbookType := string(domain.Logbook)
	rate, err := s.statistics.ApprovalRate(ctx, dto.EntryReportFilter{
		ParticipantID: &participantID,
		EntryType:     &logbookType,
	})
	if err != nil {
		return nil, err
	}

	finalScore := evaluation.FinalScore()
	eligible := finalScore.GreaterThanOrEqual(certificateMinScore) && rate >= certificateMinApprovalRate

	resp := dto.ToEvaluationResponse(evaluation, rate, eligible)
	return &resp, nil
}
