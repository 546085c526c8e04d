package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// currencyService converts amounts using rates from the exchange rate service.
type currencyService struct {
	BaseService
	rates portssvc.ExchangeRateReaderSvc
}

// NewCurrencyService creates a new currency converter backed by rates.
func NewCurrencyService(rates portssvc.ExchangeRateReaderSvc) portssvc.CurrencySvcFacade {
	return &currencyService{rates: rates}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// ListCurrencies returns the supported currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return domain.SupportedCurrencies()
}

// Convert returns amount in the target currency rounded to two places.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	conversion, err := s.ConvertWithQuote(ctx, amount, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return conversion.Converted, nil
}

// ConvertWithQuote converts and reports the rate used. Zero amounts and same-currency
// conversions return the amount unchanged without a rate lookup.
func (s *currencyService) ConvertWithQuote(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount %s must not be negative", apperrors.ErrValidation, amount.String())
	}

	conversion := &domain.Conversion{Amount: amount, From: from, To: to, Converted: amount}
	if from == to {
		conversion.Quote = domain.RateQuote{From: from, To: to, Rate: decimal.NewFromInt(1), Source: domain.RateSourceIdentity}
		return conversion, nil
	}
	if amount.IsZero() {
		conversion.Quote = domain.RateQuote{From: from, To: to}
		return conversion, nil
	}

	quote, err := s.rates.Quote(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get rate for conversion", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to convert %s to %s: %w", from, to, err)
	}

	conversion.Quote = *quote
	conversion.Converted = accounting.ConvertAmount(amount, quote.Rate)
	s.LogDebug(ctx, "Converted amount",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate_source", string(quote.Source)))
	return conversion, nil
}
