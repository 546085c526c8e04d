package services

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type commissionService struct {
	BaseService
	platformRate domain.CommissionRate
}

// NewCommissionService creates a commission service charging platformRate on deposits.
func NewCommissionService(platformRate domain.CommissionRate) portssvc.CommissionSvc {
	return &commissionService{platformRate: platformRate}
}

var _ portssvc.CommissionSvc = (*commissionService)(nil)

func (s *commissionService) PlatformRate() domain.CommissionRate {
	return s.platformRate
}

func (s *commissionService) SplitPlatformCommission(ctx context.Context, raw decimal.Decimal) (*domain.CommissionSplit, error) {
	split, err := accounting.SplitCommission(raw, s.platformRate)
	if err != nil {
		return nil, err
	}
	return &split, nil
}

func (s *commissionService) ContractorCommission(ctx context.Context, net decimal.Decimal, rate domain.CommissionRate) (decimal.Decimal, error) {
	return accounting.ContractorCommission(net, rate)
}
