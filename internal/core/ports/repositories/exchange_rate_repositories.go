package repositories

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// RateSnapshotRepository persists the quotes of successful rate fetches.
type RateSnapshotRepository interface {
	SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error

	// FindLatestRateSnapshot returns the most recently fetched snapshot or apperrors.ErrNotFound.
	FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error)
}
