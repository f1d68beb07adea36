package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// EvaluationScoreRequest is one weighted criterion score in an evaluation payload.
type EvaluationScoreRequest struct {
	Criterion string          `json:"criterion" binding:"required"`
	Score     decimal.Decimal `json:"score" binding:"required"`
	Weight    decimal.Decimal `json:"weight" binding:"required"`
}

// UpsertEvaluationRequest creates or replaces a participant's evaluation.
type UpsertEvaluationRequest struct {
	Comment string                   `json:"comment"`
	Scores  []EvaluationScoreRequest `json:"scores" binding:"required,min=1,dive"`
}

// EvaluationScoreResponse is one criterion score in the evaluation report.
type EvaluationScoreResponse struct {
	Criterion string          `json:"criterion"`
	Score     decimal.Decimal `json:"score"`
	Weight    decimal.Decimal `json:"weight"`
}

// EvaluationResponse is the evaluation report for a participant, including
// the weighted final score and certificate eligibility.
type EvaluationResponse struct {
	EvaluationID        string                    `json:"evaluationID"`
	ParticipantID       string                    `json:"participantID"`
	EvaluatorID         string                    `json:"evaluatorID"`
	Comment             string                    `json:"comment,omitempty"`
	Scores              []EvaluationScoreResponse `json:"scores"`
	FinalScore          decimal.Decimal           `json:"finalScore"`
	ApprovalRate        float64                   `json:"approvalRate"`
	CertificateEligible bool                      `json:"certificateEligible"`
}

// ToEvaluationResponse converts a domain.Evaluation plus the participant's
// approval rate into the report DTO. Eligibility is decided by the service.
func ToEvaluationResponse(e *domain.Evaluation, approvalRate float64, eligible bool) EvaluationResponse {
	scores := make([]EvaluationScoreResponse, len(e.Scores))
	for i, s := range e.Scores {
		scores[i] = EvaluationScoreResponse{Criterion: s.Criterion, Score: s.Score, Weight: s.Weight}
	}
	return EvaluationResponse{
		EvaluationID:        e.EvaluationID,
		ParticipantID:       e.ParticipantID,
		EvaluatorID:         e.EvaluatorID,
		Comment:             e.Comment,
		Scores:              scores,
		FinalScore:          e.FinalScore(),
		ApprovalRate:        approvalRate,
		CertificateEligible: eligible,
	}
}
