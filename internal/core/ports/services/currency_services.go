package services

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies returns the supported currencies.
	ListCurrencies(ctx context.Context) []domain.Currency
}

// CurrencyConverterSvc converts amounts between supported currencies.
type CurrencyConverterSvc interface {
	// Convert returns amount expressed in the target currency, rounded to 2 places.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)

	// ConvertWithQuote is Convert plus the rate and its provenance.
	ConvertWithQuote(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate returns units of to per one unit of from.
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)

	// Quote returns the rate together with where it came from.
	Quote(ctx context.Context, from, to string) (*domain.RateQuote, error)

	// CurrentTable returns the cross-rate table currently in use.
	CurrentTable(ctx context.Context) (*domain.RateTable, domain.RateSource, error)
}

// ExchangeRateWriterSvc defines cache maintenance operations for exchange rates
type ExchangeRateWriterSvc interface {
	// Refresh fetches a new table from upstream and reports fetch errors.
	Refresh(ctx context.Context) (*domain.RateTable, error)

	// Warm seeds the cache from the latest persisted snapshot.
	Warm(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
