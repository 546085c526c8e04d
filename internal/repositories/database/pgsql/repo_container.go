package pgsql

import (
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ContractorRepo:   newPgxContractorRepository(dbPool),
		DepositRepo:      newPgxDepositRepository(dbPool),
		RateSnapshotRepo: newPgxRateSnapshotRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
