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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contractorColumns = `contractor_id, name, referral_code, commission_rate, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxContractorRepository struct {
	BaseRepository
}

func newPgxContractorRepository(db *pgxpool.Pool) portsrepo.ContractorRepositoryFacade {
	return &PgxContractorRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ContractorRepositoryFacade = (*PgxContractorRepository)(nil)

func (r *PgxContractorRepository) SaveContractor(ctx context.Context, contractor domain.Contractor) error {
	m := mapping.ToModelContractor(contractor)
	query := `
		INSERT INTO contractors (` + contractorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractorID, m.Name, m.ReferralCode, m.CommissionRate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contractor referral code %s: %w", m.ReferralCode, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save contractor: %w", err)
	}
	return nil
}

func (r *PgxContractorRepository) UpdateContractorActive(ctx context.Context, contractorID string, isActive bool, actorID string, at time.Time) (*domain.Contractor, error) {
	query := `
		UPDATE contractors
		SET is_active = $1, last_updated_at = $2, last_updated_by = $3
		WHERE contractor_id = $4
		RETURNING ` + contractorColumns + `;
	`
	return r.findOne(ctx, query, isActive, at, actorID, contractorID)
}

func (r *PgxContractorRepository) FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors WHERE contractor_id = $1;`
	return r.findOne(ctx, query, contractorID)
}

func (r *PgxContractorRepository) FindContractorByReferralCode(ctx context.Context, code string) (*domain.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors WHERE referral_code = $1;`
	return r.findOne(ctx, query, code)
}

func (r *PgxContractorRepository) ListContractors(ctx context.Context, limit, offset int) ([]domain.Contractor, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + contractorColumns + `
		FROM contractors
		ORDER BY created_at DESC, contractor_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contractors: %w", err)
	}
	defer rows.Close()

	modelContractors := []models.Contractor{}
	for rows.Next() {
		var m models.Contractor
		if err := scanContractor(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan contractor row: %w", err)
		}
		modelContractors = append(modelContractors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contractor rows: %w", err)
	}

	return mapping.ToDomainContractorSlice(modelContractors)
}

// findOne scans a single contractor row; the last argument names the row in errors.
func (r *PgxContractorRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Contractor, error) {
	var m models.Contractor
	if err := scanContractor(r.Pool.QueryRow(ctx, query, args...), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contractor %v: %w", args[len(args)-1], err)
	}

	contractor, err := mapping.ToDomainContractor(m)
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

func scanContractor(row pgx.Row, m *models.Contractor) error {
	return row.Scan(
		&m.ContractorID, &m.Name, &m.ReferralCode, &m.CommissionRate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
}
