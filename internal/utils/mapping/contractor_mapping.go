package mapping

import (
	"fmt"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/models"
)

// ToModelContractor converts a domain Contractor to a model Contractor
func ToModelContractor(d domain.Contractor) models.Contractor {
	return models.Contractor{
		ContractorID:   d.ContractorID,
		Name:           d.Name,
		ReferralCode:   d.ReferralCode,
		CommissionRate: d.CommissionRate.Decimal(),
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractor converts a model Contractor to a domain Contractor.
// A stored rate outside [0, 1) is reported as an error rather than used.
func ToDomainContractor(m models.Contractor) (domain.Contractor, error) {
	rate, err := domain.NewCommissionRate(m.CommissionRate)
	if err != nil {
		return domain.Contractor{}, fmt.Errorf("contractor %s: %w", m.ContractorID, err)
	}
	return domain.Contractor{
		ContractorID:   m.ContractorID,
		Name:           m.Name,
		ReferralCode:   m.ReferralCode,
		CommissionRate: rate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainContractorSlice converts a slice of model Contractors to domain Contractors
func ToDomainContractorSlice(ms []models.Contractor) ([]domain.Contractor, error) {
	ds := make([]domain.Contractor, len(ms))
	for i, m := range ms {
		d, err := ToDomainContractor(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
