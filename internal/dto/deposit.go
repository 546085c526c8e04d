package dto

import (
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest defines the data needed to record a deposit.
type CreateDepositRequest struct {
	Method   string          `json:"method" binding:"required,oneof=SEPA CRYPTO" example:"SEPA"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	Currency string          `json:"currency" binding:"required,supported_currency" example:"EUR"`
}

// UpdateDepositStatusRequest moves a deposit along its back-office lifecycle.
type UpdateDepositStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=processing completed failed" example:"processing"`
}

// ListDepositsParams defines query parameters for listing deposits.
type ListDepositsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// DepositResponse defines the data returned for a deposit.
type DepositResponse struct {
	DepositID          string           `json:"depositID"`
	Method             string           `json:"method"`
	Status             string           `json:"status"`
	Currency           string           `json:"currency"`
	RawAmount          decimal.Decimal  `json:"rawAmount" swaggertype:"string"`
	PlatformRate       decimal.Decimal  `json:"platformRate" swaggertype:"string"`
	PlatformFee        decimal.Decimal  `json:"platformFee" swaggertype:"string"`
	NetAmount          decimal.Decimal  `json:"netAmount" swaggertype:"string"`
	SettlementCurrency string           `json:"settlementCurrency"`
	SettlementAmount   decimal.Decimal  `json:"settlementAmount" swaggertype:"string"`
	SettlementRate     decimal.Decimal  `json:"settlementRate" swaggertype:"string"`
	RateSource         string           `json:"rateSource"`
	ContractorID       *string          `json:"contractorID,omitempty"`
	ContractorRate     *decimal.Decimal `json:"contractorRate,omitempty" swaggertype:"string"`
	ContractorFee      *decimal.Decimal `json:"contractorFee,omitempty" swaggertype:"string"`
	CreatedAt          time.Time        `json:"createdAt"`
	LastUpdatedAt      time.Time        `json:"lastUpdatedAt"`
}

// ToDepositResponse converts a domain.Deposit to DepositResponse DTO
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:          d.DepositID,
		Method:             string(d.Method),
		Status:             string(d.Status),
		Currency:           d.Currency,
		RawAmount:          d.RawAmount,
		PlatformRate:       d.PlatformRate,
		PlatformFee:        d.PlatformFee,
		NetAmount:          d.NetAmount,
		SettlementCurrency: d.SettlementCurrency,
		SettlementAmount:   d.SettlementAmount,
		SettlementRate:     d.SettlementRate,
		RateSource:         string(d.RateSource),
		ContractorID:       d.ContractorID,
		ContractorRate:     d.ContractorRate,
		ContractorFee:      d.ContractorFee,
		CreatedAt:          d.CreatedAt,
		LastUpdatedAt:      d.LastUpdatedAt,
	}
}

// ListDepositsResponse wraps a page of deposits.
type ListDepositsResponse struct {
	Deposits  []DepositResponse `json:"deposits"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListDepositsResponse converts a page of domain.Deposit
func ToListDepositsResponse(deposits []domain.Deposit, nextToken *string) ListDepositsResponse {
	res := make([]DepositResponse, len(deposits))
	for i := range deposits {
		res[i] = ToDepositResponse(&deposits[i])
	}
	return ListDepositsResponse{Deposits: res, NextToken: nextToken}
}
