package domain

import "time"

// User represents a depositing user of the platform.
type User struct {
	UserID             string  `json:"userID"` // Primary Key (UUID)
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	SettlementCurrency string  `json:"settlementCurrency"`
	ReferralCode       *string `json:"referralCode,omitempty"` // contractor code captured at registration
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
