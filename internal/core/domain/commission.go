package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CommissionRate is a fraction in [0, 1). The zero value is a rate of 0.
type CommissionRate struct {
	value decimal.Decimal
}

// NewCommissionRate validates and wraps a rate.
func NewCommissionRate(v decimal.Decimal) (CommissionRate, error) {
	if v.IsNegative() || v.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return CommissionRate{}, fmt.Errorf("commission rate %s must be in [0, 1)", v.String())
	}
	return CommissionRate{value: v}, nil
}

// ParseCommissionRate parses a decimal string such as "0.16".
func ParseCommissionRate(s string) (CommissionRate, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return CommissionRate{}, fmt.Errorf("invalid commission rate %q: %w", s, err)
	}
	return NewCommissionRate(v)
}

// Decimal returns the underlying value.
func (r CommissionRate) Decimal() decimal.Decimal {
	return r.value
}

func (r CommissionRate) String() string {
	return r.value.String()
}

func (r CommissionRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// CommissionSplit is the platform fee and the net remainder of a raw amount.
// Fee + Net always equals Raw.
type CommissionSplit struct {
	Raw  decimal.Decimal `json:"raw"`
	Fee  decimal.Decimal `json:"fee"`
	Net  decimal.Decimal `json:"net"`
	Rate CommissionRate  `json:"rate"`
}
