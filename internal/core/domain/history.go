package domain

import "time"

// HistoryAction names the operation recorded by a history event.
type HistoryAction string

const (
	ActionCreate   HistoryAction = "CREATE"
	ActionUpdate   HistoryAction = "UPDATE"
	ActionDelete   HistoryAction = "DELETE"
	ActionApprove  HistoryAction = "APPROVE"
	ActionReject   HistoryAction = "REJECT"
	ActionRevision HistoryAction = "REVISION"
)

// HistoryEvent is one immutable row in the append-only audit ledger.
// Exactly one event is written per successful transition; events are never
// updated or deleted. The ledger is for audit, not for deriving current
// entry state (Entry.Status is authoritative).
type HistoryEvent struct {
	EventID   string        `json:"eventID"` // Primary Key (e.g., UUID)
	EntryID   string        `json:"entryID"`
	ActorID   string        `json:"actorID"`
	Action    HistoryAction `json:"action"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
