package models

import (
	"github.com/shopspring/decimal"
)

// Contractor represents a row of the contractors table.
type Contractor struct {
	ContractorID   string          `db:"contractor_id"`
	Name           string          `db:"name"`
	ReferralCode   string          `db:"referral_code"`
	CommissionRate decimal.Decimal `db:"commission_rate"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
