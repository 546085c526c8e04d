package services

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/dto"
)

// ContractorReaderSvc defines read operations for contractor data
type ContractorReaderSvc interface {
	GetContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error)
	ListContractors(ctx context.Context, params dto.ListContractorsParams) ([]domain.Contractor, error)
}

// ContractorWriterSvc defines write operations for contractor data
type ContractorWriterSvc interface {
	CreateContractor(ctx context.Context, req dto.CreateContractorRequest, creatorUserID string) (*domain.Contractor, error)

	// SetContractorActive enables or disables attribution of new deposits to the contractor.
	SetContractorActive(ctx context.Context, contractorID string, isActive bool, actorID string) (*domain.Contractor, error)
}

// ContractorSvcFacade combines all contractor-related service interfaces
type ContractorSvcFacade interface {
	ContractorReaderSvc
	ContractorWriterSvc
}
