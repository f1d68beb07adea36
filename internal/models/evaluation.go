package models

import "github.com/shopspring/decimal"

// Evaluation is a reviewer's end-of-internship assessment of a participant.
type Evaluation struct {
	EvaluationID  string `json:"evaluationID"`  // Primary Key (e.g., UUID)
	ParticipantID string `json:"participantID"` // FK -> users.user_id, unique (one evaluation per participant)
	EvaluatorID   string `json:"evaluatorID"`   // FK -> users.user_id
	Comment       string `json:"comment"`
	AuditFields
}

// EvaluationScore is one weighted criterion score within an evaluation.
type EvaluationScore struct {
	ScoreID      string          `json:"scoreID"`      // Primary Key (e.g., UUID)
	EvaluationID string          `json:"evaluationID"` // FK -> evaluations.evaluation_id (Not Null)
	Criterion    string          `json:"criterion"`
	Score        decimal.Decimal `json:"score"`  // 0-100
	Weight       decimal.Decimal `json:"weight"` // Positive relative weight
}
