package dto

import (
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyTotalsResponse represents one currency row of a platform commission report
type CurrencyTotalsResponse struct {
	Currency     string          `json:"currency"`
	DepositCount int             `json:"depositCount"`
	RawAmount    decimal.Decimal `json:"rawAmount" swaggertype:"string"`
	PlatformFee  decimal.Decimal `json:"platformFee" swaggertype:"string"`
	NetAmount    decimal.Decimal `json:"netAmount" swaggertype:"string"`
}

// PlatformCommissionReportResponse represents the platform commission report response
type PlatformCommissionReportResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Totals   []CurrencyTotalsResponse `json:"totals"`
	Summary  struct {
		Currency         string          `json:"currency"`
		TotalRawAmount   decimal.Decimal `json:"totalRawAmount" swaggertype:"string"`
		TotalPlatformFee decimal.Decimal `json:"totalPlatformFee" swaggertype:"string"`
	} `json:"summary"`
}

// ToPlatformCommissionReportResponse converts a domain.PlatformCommissionReport
func ToPlatformCommissionReportResponse(r *domain.PlatformCommissionReport) PlatformCommissionReportResponse {
	resp := PlatformCommissionReportResponse{
		FromDate: r.From.Format(DateLayout),
		ToDate:   r.To.Format(DateLayout),
		Totals:   make([]CurrencyTotalsResponse, len(r.Totals)),
	}
	for i, t := range r.Totals {
		resp.Totals[i] = CurrencyTotalsResponse{
			Currency:     t.Currency,
			DepositCount: t.DepositCount,
			RawAmount:    t.RawAmount,
			PlatformFee:  t.PlatformFee,
			NetAmount:    t.NetAmount,
		}
	}
	resp.Summary.Currency = r.ReportingCurrency
	resp.Summary.TotalRawAmount = r.TotalRawAmount
	resp.Summary.TotalPlatformFee = r.TotalPlatformFee
	return resp
}

// ContractorTotalsResponse represents one currency row of a contractor commission report
type ContractorTotalsResponse struct {
	Currency     string          `json:"currency"`
	DepositCount int             `json:"depositCount"`
	NetAmount    decimal.Decimal `json:"netAmount" swaggertype:"string"`
	Commission   decimal.Decimal `json:"commission" swaggertype:"string"`
}

// ContractorCommissionReportResponse represents the contractor commission report response
type ContractorCommissionReportResponse struct {
	ContractorID string                     `json:"contractorID"`
	FromDate     string                     `json:"fromDate"`
	ToDate       string                     `json:"toDate"`
	Totals       []ContractorTotalsResponse `json:"totals"`
	Summary      struct {
		Currency        string          `json:"currency"`
		TotalCommission decimal.Decimal `json:"totalCommission" swaggertype:"string"`
	} `json:"summary"`
}

// ToContractorCommissionReportResponse converts a domain.ContractorCommissionReport
func ToContractorCommissionReportResponse(r *domain.ContractorCommissionReport) ContractorCommissionReportResponse {
	resp := ContractorCommissionReportResponse{
		ContractorID: r.ContractorID,
		FromDate:     r.From.Format(DateLayout),
		ToDate:       r.To.Format(DateLayout),
		Totals:       make([]ContractorTotalsResponse, len(r.Totals)),
	}
	for i, t := range r.Totals {
		resp.Totals[i] = ContractorTotalsResponse{
			Currency:     t.Currency,
			DepositCount: t.DepositCount,
			NetAmount:    t.NetAmount,
			Commission:   t.Commission,
		}
	}
	resp.Summary.Currency = r.ReportingCurrency
	resp.Summary.TotalCommission = r.TotalCommission
	return resp
}

// DateLayout is the calendar date format used by report query parameters.
const DateLayout = "2006-01-02"
