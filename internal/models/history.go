package models

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

// HistoryEvent is one immutable row of the append-only audit ledger.
type HistoryEvent struct {
	EventID   string        `json:"eventID"` // Primary Key (e.g., UUID)
	EntryID   string        `json:"entryID"` // FK -> entries.entry_id (Not Null)
	ActorID   string        `json:"actorID"` // FK -> users.user_id (Not Null)
	Action    HistoryAction `json:"action"`
	Note      string        `json:"note"`
	CreatedAt time.Time     `json:"createdAt"`
}
