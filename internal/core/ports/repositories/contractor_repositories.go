package repositories

import (
	"context"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// ContractorReader defines read operations for contractor data
type ContractorReader interface {
	FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error)

	// FindContractorByReferralCode looks up a contractor by its upper-case referral code.
	FindContractorByReferralCode(ctx context.Context, code string) (*domain.Contractor, error)

	ListContractors(ctx context.Context, limit, offset int) ([]domain.Contractor, error)
}

// ContractorWriter defines write operations for contractor data
type ContractorWriter interface {
	// SaveContractor inserts a contractor. Returns apperrors.ErrDuplicate on a referral code clash.
	SaveContractor(ctx context.Context, contractor domain.Contractor) error

	// UpdateContractorActive switches attribution on or off and returns the updated row.
	// Returns apperrors.ErrNotFound for an unknown id.
	UpdateContractorActive(ctx context.Context, contractorID string, isActive bool, actorID string, at time.Time) (*domain.Contractor, error)
}

// ContractorRepositoryFacade combines all contractor-related repository interfaces
type ContractorRepositoryFacade interface {
	ContractorReader
	ContractorWriter
}
