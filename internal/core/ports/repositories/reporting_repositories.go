package repositories

import (
	"context"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// ReportingRepository defines data access for commission reports.
// Windows are half-open: from <= created_at < to.
type ReportingRepository interface {
	// GetPlatformCommissionTotals sums non-failed deposits per currency.
	GetPlatformCommissionTotals(ctx context.Context, from, to time.Time) ([]domain.CurrencyCommissionTotals, error)

	// ListAttributedDeposits returns the non-failed deposits attributed to a contractor.
	ListAttributedDeposits(ctx context.Context, contractorID string, from, to time.Time) ([]domain.AttributedDeposit, error)
}
