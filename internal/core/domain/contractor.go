package domain

// Contractor is a referral partner paid a share of the net amount of referred deposits.
type Contractor struct {
	ContractorID   string         `json:"contractorID"`
	Name           string         `json:"name"`
	ReferralCode   string         `json:"referralCode"` // unique, upper-case
	CommissionRate CommissionRate `json:"commissionRate"`
	IsActive       bool           `json:"isActive"`
	AuditFields
}
