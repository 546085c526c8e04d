package services

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/dto"
)

// DepositReaderSvc defines read operations for deposit data
type DepositReaderSvc interface {
	// GetDeposit returns a deposit owned by userID.
	GetDeposit(ctx context.Context, depositID, userID string) (*domain.Deposit, error)

	// ListDeposits returns a page of the user's deposits, newest first.
	ListDeposits(ctx context.Context, userID string, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error)
}

// DepositWriterSvc defines write operations for deposit data
type DepositWriterSvc interface {
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, userID string) (*domain.Deposit, error)

	// UpdateDepositStatus applies a back-office status transition.
	UpdateDepositStatus(ctx context.Context, depositID string, status domain.DepositStatus, actorID string) (*domain.Deposit, error)
}

// DepositSvcFacade combines all deposit-related service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
