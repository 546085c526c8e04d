package services

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionSvc applies the platform and contractor commission rules.
type CommissionSvc interface {
	// PlatformRate returns the configured platform commission rate.
	PlatformRate() domain.CommissionRate

	// SplitPlatformCommission splits a raw amount with the platform rate.
	SplitPlatformCommission(ctx context.Context, raw decimal.Decimal) (*domain.CommissionSplit, error)

	// ContractorCommission computes the contractor share of a net amount.
	ContractorCommission(ctx context.Context, net decimal.Decimal, rate domain.CommissionRate) (decimal.Decimal, error)
}
