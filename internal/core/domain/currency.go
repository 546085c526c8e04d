package domain

import (
	"strings"
)

// Supported currency codes.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
	CurrencyCHF = "CHF"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
	Precision    int    `json:"precision"`    // minor units
}

var supportedCurrencies = []Currency{
	{CurrencyCode: CurrencyEUR, Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: CurrencyUSD, Symbol: "$", Name: "US Dollar", Precision: 2},
	{CurrencyCode: CurrencyGBP, Symbol: "£", Name: "British Pound", Precision: 2},
	{CurrencyCode: CurrencyCHF, Symbol: "CHF", Name: "Swiss Franc", Precision: 2},
}

// SupportedCurrencies returns the currencies the platform accepts, EUR first.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// SupportedCurrencyCodes returns the codes of SupportedCurrencies in the same order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.CurrencyCode
	}
	return codes
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether the normalized code is in the supported set.
func IsSupportedCurrency(code string) bool {
	code = NormalizeCurrencyCode(code)
	for _, c := range supportedCurrencies {
		if c.CurrencyCode == code {
			return true
		}
	}
	return false
}
