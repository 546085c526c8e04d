package models

import (
	"time"
)

// User represents a row of the users table.
type User struct {
	UserID             string  `db:"user_id"`
	Email              string  `db:"email"`
	Name               string  `db:"name"`
	SettlementCurrency string  `db:"settlement_currency"`
	ReferralCode       *string `db:"referral_code"` // Nullable
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
