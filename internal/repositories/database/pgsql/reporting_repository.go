package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetPlatformCommissionTotals sums raw, fee and net per deposit currency.
func (r *reportingRepository) GetPlatformCommissionTotals(ctx context.Context, from, to time.Time) ([]domain.CurrencyCommissionTotals, error) {
	query := `
		SELECT
			currency_code,
			COUNT(*) AS deposit_count,
			COALESCE(SUM(raw_amount), 0) AS raw_amount,
			COALESCE(SUM(platform_fee), 0) AS platform_fee,
			COALESCE(SUM(net_amount), 0) AS net_amount
		FROM deposits
		WHERE created_at >= $1
			AND created_at < $2
			AND status <> 'failed'
		GROUP BY currency_code
		ORDER BY currency_code
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying platform commission totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CurrencyCommissionTotals{}
	for rows.Next() {
		var row domain.CurrencyCommissionTotals
		if err := rows.Scan(
			&row.Currency,
			&row.DepositCount,
			&row.RawAmount,
			&row.PlatformFee,
			&row.NetAmount,
		); err != nil {
			return nil, fmt.Errorf("error scanning platform commission row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platform commission rows: %w", err)
	}
	return result, nil
}

// ListAttributedDeposits returns the net amount and frozen rate of each attributed deposit.
func (r *reportingRepository) ListAttributedDeposits(ctx context.Context, contractorID string, from, to time.Time) ([]domain.AttributedDeposit, error) {
	query := `
		SELECT deposit_id, currency_code, net_amount, contractor_rate, created_at
		FROM deposits
		WHERE contractor_id = $1
			AND contractor_rate IS NOT NULL
			AND created_at >= $2
			AND created_at < $3
			AND status <> 'failed'
		ORDER BY created_at, deposit_id
	`

	rows, err := r.Pool.Query(ctx, query, contractorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying attributed deposits: %w", err)
	}
	defer rows.Close()

	result := []domain.AttributedDeposit{}
	for rows.Next() {
		var row domain.AttributedDeposit
		if err := rows.Scan(
			&row.DepositID,
			&row.Currency,
			&row.NetAmount,
			&row.ContractorRate,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning attributed deposit row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attributed deposit rows: %w", err)
	}
	return result, nil
}
