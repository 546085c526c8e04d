package dto

import (
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the data returned for a single currency pair.
type ExchangeRateResponse struct {
	From      string          `json:"from" example:"EUR"`
	To        string          `json:"to" example:"USD"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string" example:"1.08"`
	Source    string          `json:"source" example:"live"`
	FetchedAt *time.Time      `json:"fetchedAt,omitempty"`
}

// ToExchangeRateResponse converts a domain.RateQuote to ExchangeRateResponse DTO
func ToExchangeRateResponse(q *domain.RateQuote) ExchangeRateResponse {
	return ExchangeRateResponse{
		From:      q.From,
		To:        q.To,
		Rate:      q.Rate,
		Source:    string(q.Source),
		FetchedAt: timePtrOrNil(q.FetchedAt),
	}
}

// ExchangeRateTableResponse is the full cross-rate matrix currently in use.
type ExchangeRateTableResponse struct {
	Base      string                                `json:"base"`
	Source    string                                `json:"source"`
	FetchedAt *time.Time                            `json:"fetchedAt,omitempty"`
	Rates     map[string]map[string]decimal.Decimal `json:"rates" swaggertype:"object"`
}

// ToExchangeRateTableResponse converts a domain.RateTable to its response DTO
func ToExchangeRateTableResponse(t *domain.RateTable, source domain.RateSource) ExchangeRateTableResponse {
	return ExchangeRateTableResponse{
		Base:      t.Base,
		Source:    string(source),
		FetchedAt: timePtrOrNil(t.FetchedAt),
		Rates:     t.Rates,
	}
}

func timePtrOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
