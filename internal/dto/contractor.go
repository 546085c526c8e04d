package dto

import (
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractorRequest defines the data needed to onboard a referral contractor.
type CreateContractorRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	ReferralCode   string          `json:"referralCode" binding:"required,alphanum,min=3,max=32"`
	CommissionRate decimal.Decimal `json:"commissionRate" swaggertype:"string" example:"0.0085"`
}

// ListContractorsParams defines query parameters for listing contractors.
type UpdateContractorStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}

type ListContractorsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ContractorResponse defines the data returned for a contractor.
type ContractorResponse struct {
	ContractorID   string          `json:"contractorID"`
	Name           string          `json:"name"`
	ReferralCode   string          `json:"referralCode"`
	CommissionRate decimal.Decimal `json:"commissionRate" swaggertype:"string"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToContractorResponse converts a domain.Contractor to ContractorResponse DTO
func ToContractorResponse(c *domain.Contractor) ContractorResponse {
	return ContractorResponse{
		ContractorID:   c.ContractorID,
		Name:           c.Name,
		ReferralCode:   c.ReferralCode,
		CommissionRate: c.CommissionRate.Decimal(),
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
	}
}

// ListContractorsResponse wraps the list of contractors.
type ListContractorsResponse struct {
	Contractors []ContractorResponse `json:"contractors"`
}

// ToListContractorsResponse converts a slice of domain.Contractor
func ToListContractorsResponse(contractors []domain.Contractor) ListContractorsResponse {
	res := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		res[i] = ToContractorResponse(&contractors[i])
	}
	return ListContractorsResponse{Contractors: res}
}
