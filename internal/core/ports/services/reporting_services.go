package services

import (
	"context"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// ReportingService defines operations for commission analytics.
// Date windows are inclusive calendar days.
type ReportingService interface {
	// PlatformCommissionReport sums platform fees per currency and in the reporting currency.
	PlatformCommissionReport(ctx context.Context, from, to time.Time) (*domain.PlatformCommissionReport, error)

	// ContractorCommissionReport sums the commission owed to one contractor.
	ContractorCommissionReport(ctx context.Context, contractorID string, from, to time.Time) (*domain.ContractorCommissionReport, error)
}
