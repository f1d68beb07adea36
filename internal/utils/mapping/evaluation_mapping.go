package mapping

import (
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
)

// ToModelEvaluation converts a domain Evaluation to its model (scores mapped separately)
func ToModelEvaluation(d domain.Evaluation) models.Evaluation {
	return models.Evaluation{
		EvaluationID:  d.EvaluationID,
		ParticipantID: d.ParticipantID,
		EvaluatorID:   d.EvaluatorID,
		Comment:       d.Comment,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvaluation converts a model Evaluation plus its scores to the domain type
func ToDomainEvaluation(m models.Evaluation, scores []models.EvaluationScore) domain.Evaluation {
	ds := make([]domain.EvaluationScore, len(scores))
	for i, s := range scores {
		ds[i] = domain.EvaluationScore{
			ScoreID:      s.ScoreID,
			EvaluationID: s.EvaluationID,
			Criterion:    s.Criterion,
			Score:        s.Score,
			Weight:       s.Weight,
		}
	}
	return domain.Evaluation{
		EvaluationID:  m.EvaluationID,
		ParticipantID: m.ParticipantID,
		EvaluatorID:   m.EvaluatorID,
		Comment:       m.Comment,
		Scores:        ds,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEvaluationScores converts domain scores to model rows
func ToModelEvaluationScores(ds []domain.EvaluationScore) []models.EvaluationScore {
	ms := make([]models.EvaluationScore, len(ds))
	for i, s := range ds {
		ms[i] = models.EvaluationScore{
			ScoreID:      s.ScoreID,
			EvaluationID: s.EvaluationID,
			Criterion:    s.Criterion,
			Score:        s.Score,
			Weight:       s.Weight,
		}
	}
	return ms
}
