package accounting

import (
	"fmt"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places every monetary result is rounded to.
const AmountPlaces int32 = 2

// RoundAmount rounds to AmountPlaces, half away from zero.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPlaces)
}

// SplitCommission divides a raw deposit amount into the platform fee and the net remainder.
// Only the fee is rounded; the net is derived by subtraction so that fee + net == raw exactly.
// Example: 1000 at 0.16 gives fee 160 and net 840.
func SplitCommission(raw decimal.Decimal, rate domain.CommissionRate) (domain.CommissionSplit, error) {
	if raw.IsNegative() {
		return domain.CommissionSplit{}, fmt.Errorf("%w: amount %s must not be negative", apperrors.ErrValidation, raw.String())
	}

	fee := RoundAmount(raw.Mul(rate.Decimal()))
	return domain.CommissionSplit{
		Raw:  raw,
		Fee:  fee,
		Net:  raw.Sub(fee),
		Rate: rate,
	}, nil
}

// ContractorCommission computes the contractor's share of a net amount.
// Example: 840 at 0.0085 gives 7.14.
func ContractorCommission(net decimal.Decimal, rate domain.CommissionRate) (decimal.Decimal, error) {
	if net.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: net amount %s must not be negative", apperrors.ErrValidation, net.String())
	}
	return RoundAmount(net.Mul(rate.Decimal())), nil
}

// ConvertAmount applies a rate and rounds the result to AmountPlaces.
func ConvertAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(rate))
}
