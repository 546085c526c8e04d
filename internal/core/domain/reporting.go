package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyCommissionTotals aggregates platform commission for one deposit currency.
type CurrencyCommissionTotals struct {
	Currency     string          `json:"currency"`
	DepositCount int             `json:"depositCount"`
	RawAmount    decimal.Decimal `json:"rawAmount"`
	PlatformFee  decimal.Decimal `json:"platformFee"`
	NetAmount    decimal.Decimal `json:"netAmount"`
}

// PlatformCommissionReport sums platform fees over non-failed deposits in a window.
type PlatformCommissionReport struct {
	From              time.Time                  `json:"from"`
	To                time.Time                  `json:"to"`
	Totals            []CurrencyCommissionTotals `json:"totals"`
	ReportingCurrency string                     `json:"reportingCurrency"`
	TotalRawAmount    decimal.Decimal            `json:"totalRawAmount"`
	TotalPlatformFee  decimal.Decimal            `json:"totalPlatformFee"`
}

// AttributedDeposit is the slice of a deposit needed to recompute a contractor fee.
type AttributedDeposit struct {
	DepositID      string          `json:"depositID"`
	Currency       string          `json:"currency"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	ContractorRate decimal.Decimal `json:"contractorRate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ContractorCurrencyTotals aggregates contractor commission for one deposit currency.
type ContractorCurrencyTotals struct {
	Currency     string          `json:"currency"`
	DepositCount int             `json:"depositCount"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	Commission   decimal.Decimal `json:"commission"`
}

// ContractorCommissionReport sums the commission owed to one contractor in a window.
type ContractorCommissionReport struct {
	ContractorID      string                     `json:"contractorID"`
	From              time.Time                  `json:"from"`
	To                time.Time                  `json:"to"`
	Totals            []ContractorCurrencyTotals `json:"totals"`
	ReportingCurrency string                     `json:"reportingCurrency"`
	TotalCommission   decimal.Decimal            `json:"totalCommission"`
}
