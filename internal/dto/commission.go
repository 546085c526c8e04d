package dto

import (
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitCommissionRequest previews the platform split of a raw amount.
// When ContractorRate is set the contractor fee on the net is included.
type SplitCommissionRequest struct {
	Amount         decimal.Decimal  `json:"amount" swaggertype:"string" example:"1000"`
	ContractorRate *decimal.Decimal `json:"contractorRate,omitempty" swaggertype:"string" example:"0.0085"`
}

// SplitCommissionResponse is the computed split.
type SplitCommissionResponse struct {
	Raw           decimal.Decimal  `json:"raw" swaggertype:"string"`
	PlatformRate  decimal.Decimal  `json:"platformRate" swaggertype:"string"`
	Fee           decimal.Decimal  `json:"fee" swaggertype:"string"`
	Net           decimal.Decimal  `json:"net" swaggertype:"string"`
	ContractorFee *decimal.Decimal `json:"contractorFee,omitempty" swaggertype:"string"`
}

// ToSplitCommissionResponse converts a domain.CommissionSplit
func ToSplitCommissionResponse(split *domain.CommissionSplit, contractorFee *decimal.Decimal) SplitCommissionResponse {
	return SplitCommissionResponse{
		Raw:           split.Raw,
		PlatformRate:  split.Rate.Decimal(),
		Fee:           split.Fee,
		Net:           split.Net,
		ContractorFee: contractorFee,
	}
}
