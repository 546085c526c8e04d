package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	ContractorRepo   ContractorRepositoryFacade
	DepositRepo      DepositRepositoryFacade
	RateSnapshotRepo RateSnapshotRepository
	ReportingRepo    ReportingRepository
}
