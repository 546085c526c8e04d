package mapping

import (
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/models"
)

// ToModelDeposit converts a domain Deposit to a model Deposit
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		DepositID:          d.DepositID,
		UserID:             d.UserID,
		Method:             string(d.Method),
		Status:             string(d.Status),
		CurrencyCode:       d.Currency,
		RawAmount:          d.RawAmount,
		PlatformRate:       d.PlatformRate,
		PlatformFee:        d.PlatformFee,
		NetAmount:          d.NetAmount,
		SettlementCurrency: d.SettlementCurrency,
		SettlementAmount:   d.SettlementAmount,
		SettlementRate:     d.SettlementRate,
		RateSource:         string(d.RateSource),
		ContractorID:       d.ContractorID,
		ContractorRate:     d.ContractorRate,
		ContractorFee:      d.ContractorFee,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeposit converts a model Deposit to a domain Deposit
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID:          m.DepositID,
		UserID:             m.UserID,
		Method:             domain.DepositMethod(m.Method),
		Status:             domain.DepositStatus(m.Status),
		Currency:           m.CurrencyCode,
		RawAmount:          m.RawAmount,
		PlatformRate:       m.PlatformRate,
		PlatformFee:        m.PlatformFee,
		NetAmount:          m.NetAmount,
		SettlementCurrency: m.SettlementCurrency,
		SettlementAmount:   m.SettlementAmount,
		SettlementRate:     m.SettlementRate,
		RateSource:         domain.RateSource(m.RateSource),
		ContractorID:       m.ContractorID,
		ContractorRate:     m.ContractorRate,
		ContractorFee:      m.ContractorFee,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepositSlice converts a slice of model Deposits to domain Deposits
func ToDomainDepositSlice(ms []models.Deposit) []domain.Deposit {
	ds := make([]domain.Deposit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeposit(m)
	}
	return ds
}
