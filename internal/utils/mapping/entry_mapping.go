package mapping

import (
	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	"github.com/wisnuad/internship_mgmt_app/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:       d.EntryID,
		ParticipantID: d.ParticipantID,
		EntryType:     models.EntryType(d.EntryType),
		Date:          d.Date,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Description:   d.Description,
		Status:        models.EntryStatus(d.Status),
		ReviewerNote:  d.ReviewerNote,
		ReviewedBy:    d.ReviewedBy,
		ReviewedAt:    d.ReviewedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:       m.EntryID,
		ParticipantID: m.ParticipantID,
		EntryType:     domain.EntryType(m.EntryType),
		Date:          m.Date,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Description:   m.Description,
		Status:        domain.EntryStatus(m.Status),
		ReviewerNote:  m.ReviewerNote,
		ReviewedBy:    m.ReviewedBy,
		ReviewedAt:    m.ReviewedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainEntrySlice converts a slice of model Entries to domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
