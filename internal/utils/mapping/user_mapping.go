package mapping

import (
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Email:              d.Email,
		Name:               d.Name,
		SettlementCurrency: d.SettlementCurrency,
		ReferralCode:       d.ReferralCode,
		AuditFields:        ToModelAuditFields(d.AuditFields),
		DeletedAt:          d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		Email:              m.Email,
		Name:               m.Name,
		SettlementCurrency: m.SettlementCurrency,
		ReferralCode:       m.ReferralCode,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
		DeletedAt:          m.DeletedAt,
	}
}
