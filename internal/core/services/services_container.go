package services

import (
	"github.com/evokeessence/evoke_backend/internal/cache"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	rateCache *cache.RatesCache,
	fetcher gateways.RateFetcher,
	publisher gateways.DepositEventPublisher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Rates first; everything that converts depends on them
	container.ExchangeRate = NewExchangeRateService(
		rateCache,
		fetcher,
		WithRateSnapshotRepository(repos.RateSnapshotRepo),
		WithRateFetchTimeout(cfg.ExchangeRateFetchTimeout),
	)
	container.Currency = NewCurrencyService(container.ExchangeRate)
	container.Commission = NewCommissionService(cfg.PlatformCommissionRate)

	container.User = NewUserService(repos.UserRepo, repos.ContractorRepo)
	container.Contractor = NewContractorService(repos.ContractorRepo)
	container.Deposit = NewDepositService(
		repos.DepositRepo,
		repos.UserRepo,
		repos.ContractorRepo,
		container.Currency,
		container.Commission,
		WithDepositEventPublisher(publisher),
	)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.ContractorRepo,
		container.Currency,
		WithReportingCurrency(cfg.ReportingCurrency),
	)

	return container
}
