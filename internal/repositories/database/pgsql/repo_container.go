package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	entryRepo := newPgxEntryRepository(dbPool)
	historyRepo := newPgxHistoryRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	evaluationRepo := newPgxEvaluationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EntryRepo:        entryRepo,
		HistoryRepo:      historyRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		EvaluationRepo:   evaluationRepo,
	}
}
