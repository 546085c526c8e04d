package domain

import (
	"github.com/shopspring/decimal"
)

// DepositMethod is the rail a deposit arrived on.
type DepositMethod string

const (
	DepositMethodSEPA   DepositMethod = "SEPA"
	DepositMethodCrypto DepositMethod = "CRYPTO"
)

// IsValid reports whether m is a known method.
func (m DepositMethod) IsValid() bool {
	return m == DepositMethodSEPA || m == DepositMethodCrypto
}

// DepositStatus is the back-office processing state of a deposit.
type DepositStatus string

const (
	DepositStatusPending    DepositStatus = "pending"
	DepositStatusProcessing DepositStatus = "processing"
	DepositStatusCompleted  DepositStatus = "completed"
	DepositStatusFailed     DepositStatus = "failed"
)

var depositTransitions = map[DepositStatus][]DepositStatus{
	DepositStatusPending:    {DepositStatusProcessing, DepositStatusFailed},
	DepositStatusProcessing: {DepositStatusCompleted, DepositStatusFailed},
}

// IsValid reports whether s is a known status.
func (s DepositStatus) IsValid() bool {
	switch s {
	case DepositStatusPending, DepositStatusProcessing, DepositStatusCompleted, DepositStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether a deposit in state s may move to next.
func (s DepositStatus) CanTransitionTo(next DepositStatus) bool {
	for _, allowed := range depositTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deposit is a user deposit with its platform split, settlement conversion
// and, when referred, the contractor attribution frozen at creation.
type Deposit struct {
	DepositID string        `json:"depositID"`
	UserID    string        `json:"userID"`
	Method    DepositMethod `json:"method"`
	Status    DepositStatus `json:"status"`

	Currency     string          `json:"currency"`
	RawAmount    decimal.Decimal `json:"rawAmount"`
	PlatformRate decimal.Decimal `json:"platformRate"`
	PlatformFee  decimal.Decimal `json:"platformFee"`
	NetAmount    decimal.Decimal `json:"netAmount"`

	SettlementCurrency string          `json:"settlementCurrency"`
	SettlementAmount   decimal.Decimal `json:"settlementAmount"`
	SettlementRate     decimal.Decimal `json:"settlementRate"`
	RateSource         RateSource      `json:"rateSource"`

	ContractorID   *string          `json:"contractorID,omitempty"`
	ContractorRate *decimal.Decimal `json:"contractorRate,omitempty"`
	ContractorFee  *decimal.Decimal `json:"contractorFee,omitempty"`

	AuditFields
}

// DepositEvent is published when a deposit is recorded.
type DepositEvent struct {
	Type    string  `json:"type"`
	Deposit Deposit `json:"deposit"`
}

// Deposit event types.
const (
	DepositCreatedEvent       = "deposit.created"
	DepositStatusChangedEvent = "deposit.status_changed"
)
