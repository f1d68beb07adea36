package mapping

import (
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
)

// ToModelHistoryEvent converts a domain HistoryEvent to a model HistoryEvent
func ToModelHistoryEvent(d domain.HistoryEvent) models.HistoryEvent {
	return models.HistoryEvent{
		EventID:   d.EventID,
		EntryID:   d.EntryID,
		ActorID:   d.ActorID,
		Action:    models.HistoryAction(d.Action),
		Note:      d.Note,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainHistoryEvent converts a model HistoryEvent to a domain HistoryEvent
func ToDomainHistoryEvent(m models.HistoryEvent) domain.HistoryEvent {
	return domain.HistoryEvent{
		EventID:   m.EventID,
		EntryID:   m.EntryID,
		ActorID:   m.ActorID,
		Action:    domain.HistoryAction(m.Action),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainHistoryEventSlice converts a slice of model events to domain events
func ToDomainHistoryEventSlice(ms []models.HistoryEvent) []domain.HistoryEvent {
	ds := make([]domain.HistoryEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHistoryEvent(m)
	}
	return ds
}
