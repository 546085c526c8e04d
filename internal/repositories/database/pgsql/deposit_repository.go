package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	"github.com/evokeessence/evoke_backend/internal/models"
	"github.com/evokeessence/evoke_backend/internal/utils/mapping"
	"github.com/evokeessence/evoke_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const depositColumns = `deposit_id, user_id, method, status, currency_code,
		raw_amount, platform_rate, platform_fee, net_amount,
		settlement_currency, settlement_amount, settlement_rate, rate_source,
		contractor_id, contractor_rate, contractor_fee,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxDepositRepository implements portsrepo.DepositRepositoryFacade using pgxpool.
type PgxDepositRepository struct {
	BaseRepository
}

func newPgxDepositRepository(db *pgxpool.Pool) portsrepo.DepositRepositoryFacade {
	return &PgxDepositRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DepositRepositoryFacade = (*PgxDepositRepository)(nil)

func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	m := mapping.ToModelDeposit(deposit)
	query := `
		INSERT INTO deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DepositID, m.UserID, m.Method, m.Status, m.CurrencyCode,
		m.RawAmount, m.PlatformRate, m.PlatformFee, m.NetAmount,
		m.SettlementCurrency, m.SettlementAmount, m.SettlementRate, m.RateSource,
		m.ContractorID, m.ContractorRate, m.ContractorFee,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("deposit %s: %w", m.DepositID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save deposit: %w", err)
	}
	return nil
}

func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id = $1;`

	var m models.Deposit
	if err := scanDeposit(r.Pool.QueryRow(ctx, query, depositID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit %s: %w", depositID, err)
	}

	deposit := mapping.ToDomainDeposit(m)
	return &deposit, nil
}

// ListDepositsByUser pages with a (created_at, deposit_id) keyset cursor.
// One extra row is read to decide whether a next page exists.
func (r *PgxDepositRepository) ListDepositsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		afterCreatedAt, afterID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		query := `
			SELECT ` + depositColumns + `
			FROM deposits
			WHERE user_id = $1 AND (created_at, deposit_id) < ($2, $3)
			ORDER BY created_at DESC, deposit_id DESC
			LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, userID, afterCreatedAt, afterID, limit+1)
	} else {
		query := `
			SELECT ` + depositColumns + `
			FROM deposits
			WHERE user_id = $1
			ORDER BY created_at DESC, deposit_id DESC
			LIMIT $2;
		`
		rows, err = r.Pool.Query(ctx, query, userID, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer rows.Close()

	modelDeposits := []models.Deposit{}
	for rows.Next() {
		var m models.Deposit
		if err := scanDeposit(rows, &m); err != nil {
			return nil, nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		modelDeposits = append(modelDeposits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating deposit rows: %w", err)
	}

	var next *string
	if len(modelDeposits) > limit {
		modelDeposits = modelDeposits[:limit]
		last := modelDeposits[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.DepositID)
		next = &token
	}
	return mapping.ToDomainDepositSlice(modelDeposits), next, nil
}

func (r *PgxDepositRepository) UpdateDepositStatus(ctx context.Context, depositID string, expected, next domain.DepositStatus, actorID string, at time.Time) error {
	query := `
		UPDATE deposits
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE deposit_id = $4 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(next), at, actorID, depositID, string(expected))
	if err != nil {
		return fmt.Errorf("failed to update deposit status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("deposit %s not in status %s: %w", depositID, expected, apperrors.ErrNotFound)
	}
	return nil
}

func scanDeposit(row pgx.Row, m *models.Deposit) error {
	return row.Scan(
		&m.DepositID, &m.UserID, &m.Method, &m.Status, &m.CurrencyCode,
		&m.RawAmount, &m.PlatformRate, &m.PlatformFee, &m.NetAmount,
		&m.SettlementCurrency, &m.SettlementAmount, &m.SettlementRate, &m.RateSource,
		&m.ContractorID, &m.ContractorRate, &m.ContractorFee,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
}
