package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	"github.com/evokeessence/evoke_backend/internal/models"
	"github.com/evokeessence/evoke_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateSnapshotRepository stores each successful upstream fetch as a header row plus quote rows.
type PgxRateSnapshotRepository struct {
	BaseRepository
}

func newPgxRateSnapshotRepository(db *pgxpool.Pool) portsrepo.RateSnapshotRepository {
	return &PgxRateSnapshotRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RateSnapshotRepository = (*PgxRateSnapshotRepository)(nil)

// SaveRateSnapshot writes the header and quotes in one transaction.
func (r *PgxRateSnapshotRepository) SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error {
	header, quotes := mapping.ToModelRateSnapshot(snapshot)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO rate_snapshots (snapshot_id, base_currency, fetched_at)
		VALUES ($1, $2, $3)`,
		header.SnapshotID, header.BaseCurrency, header.FetchedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save rate snapshot", err)
	}

	batch := &pgx.Batch{}
	for _, q := range quotes {
		batch.Queue(`
			INSERT INTO rate_snapshot_quotes (snapshot_id, currency_code, rate)
			VALUES ($1, $2, $3)`,
			q.SnapshotID, q.CurrencyCode, q.Rate,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to save rate snapshot quotes", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxRateSnapshotRepository) FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	var header models.RateSnapshot
	err := r.Pool.QueryRow(ctx, `
		SELECT snapshot_id, base_currency, fetched_at
		FROM rate_snapshots
		ORDER BY fetched_at DESC
		LIMIT 1;`,
	).Scan(&header.SnapshotID, &header.BaseCurrency, &header.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest rate snapshot: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT snapshot_id, currency_code, rate
		FROM rate_snapshot_quotes
		WHERE snapshot_id = $1;`,
		header.SnapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate snapshot quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.RateSnapshotQuote
	for rows.Next() {
		var q models.RateSnapshotQuote
		if err := rows.Scan(&q.SnapshotID, &q.CurrencyCode, &q.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan rate snapshot quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate snapshot quotes: %w", err)
	}

	snapshot := mapping.ToDomainRateSnapshot(header, quotes)
	return &snapshot, nil
}
