package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	Currency     CurrencySvcFacade
	Commission   CommissionSvc
	User         UserSvcFacade
	Contractor   ContractorSvcFacade
	Deposit      DepositSvcFacade
	Reporting    ReportingService
}
