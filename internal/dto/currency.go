package dto

import (
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Precision:    curr.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}

// ConvertRequest asks for an amount to be converted between two supported currencies.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	From   string          `json:"from" binding:"required,supported_currency" example:"EUR"`
	To     string          `json:"to" binding:"required,supported_currency" example:"USD"`
}

// ConversionResponse is the result of a conversion including rate provenance.
type ConversionResponse struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted string          `json:"converted" example:"108.00"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string"`
	Source    string          `json:"source" example:"cached"`
}

// ToConversionResponse converts a domain.Conversion; the converted amount is
// rendered with the target currency's precision.
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:    c.Amount,
		From:      c.From,
		To:        c.To,
		Converted: c.Converted.StringFixed(2),
		Rate:      c.Quote.Rate,
		Source:    string(c.Quote.Source),
	}
}
