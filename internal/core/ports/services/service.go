package services

// ServiceContainer holds all service facades needed by the handlers.
// This makes passing dependencies into route registration cleaner.
type ServiceContainer struct {
	Entry        EntrySvcFacade
	History      HistorySvcFacade
	Notification NotificationSvcFacade
	Statistics   StatisticsSvcFacade
	User         UserSvcFacade
	Auth         AuthSvcFacade
	Evaluation   EvaluationSvcFacade
}
