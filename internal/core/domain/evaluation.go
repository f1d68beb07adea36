package domain

import "github.com/shopspring/decimal"

// EvaluationScore is one weighted criterion score within an evaluation.
// Score is on a 0-100 scale; Weight is a positive relative weight.
type EvaluationScore struct {
	ScoreID      string          `json:"scoreID"` // Primary Key (e.g., UUID)
	EvaluationID string          `json:"evaluationID"`
	Criterion    string          `json:"criterion"`
	Score        decimal.Decimal `json:"score"`
	Weight       decimal.Decimal `json:"weight"`
}

// Evaluation is a reviewer's end-of-internship assessment of a participant.
type Evaluation struct {
	EvaluationID  string            `json:"evaluationID"` // Primary Key (e.g., UUID)
	ParticipantID string            `json:"participantID"`
	EvaluatorID   string            `json:"evaluatorID"`
	Comment       string            `json:"comment,omitempty"`
	Scores        []EvaluationScore `json:"scores,omitempty"`
	AuditFields
}

// FinalScore computes the weighted average of all criterion scores,
// zero when there are no scores or the weights sum to zero.
func (e *Evaluation) FinalScore() decimal.Decimal {
	weightSum := decimal.Zero
	weighted := decimal.Zero
	for _, s := range e.Scores {
		weightSum = weightSum.Add(s.Weight)
		weighted = weighted.Add(s.Score.Mul(s.Weight))
	}
	if weightSum.IsZero() {
		return decimal.Zero
	}
	return weighted.Div(weightSum).Round(2)
}
