package models

import (
	"github.com/shopspring/decimal"
)

// Deposit represents a row of the deposits table.
// Contractor columns are null for unattributed deposits.
type Deposit struct {
	DepositID          string           `db:"deposit_id"`
	UserID             string           `db:"user_id"`
	Method             string           `db:"method"`
	Status             string           `db:"status"`
	CurrencyCode       string           `db:"currency_code"`
	RawAmount          decimal.Decimal  `db:"raw_amount"`
	PlatformRate       decimal.Decimal  `db:"platform_rate"`
	PlatformFee        decimal.Decimal  `db:"platform_fee"`
	NetAmount          decimal.Decimal  `db:"net_amount"`
	SettlementCurrency string           `db:"settlement_currency"`
	SettlementAmount   decimal.Decimal  `db:"settlement_amount"`
	SettlementRate     decimal.Decimal  `db:"settlement_rate"`
	RateSource         string           `db:"rate_source"`
	ContractorID       *string          `db:"contractor_id"`
	ContractorRate     *decimal.Decimal `db:"contractor_rate"`
	ContractorFee      *decimal.Decimal `db:"contractor_fee"`
	AuditFields
}
