package services

import (
	"time"

	portsrepo "github.com/wisnuad/internship_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
)

// AuthConfig carries the token-issuing settings the auth service needs.
type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
	Issuer      string
}

// NewServiceContainer wires every service facade against the repository
// provider. The notification service doubles as the notifier consumed by
// the entry workflow; the statistics service feeds the evaluation report.
func NewServiceContainer(repos portsrepo.RepositoryProvider, authCfg AuthConfig) *portssvc.ServiceContainer {
	notificationSvc := NewNotificationService(repos.NotificationRepo)
	statisticsSvc := NewStatisticsService(repos.EntryRepo)

	return &portssvc.ServiceContainer{
		Entry:        NewEntryService(repos.EntryRepo, notificationSvc),
		History:      NewHistoryService(repos.HistoryRepo, repos.EntryRepo),
		Notification: notificationSvc,
		Statistics:   statisticsSvc,
		User:         NewUserService(repos.UserRepo),
		Auth:         NewAuthService(repos.UserRepo, authCfg.JWTSecret, authCfg.TokenExpiry, authCfg.Issuer),
		Evaluation:   NewEvaluationService(repos.EvaluationRepo, repos.UserRepo, statisticsSvc),
	}
}
