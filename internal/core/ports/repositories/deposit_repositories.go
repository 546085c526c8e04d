package repositories

import (
	"context"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// DepositReader defines read operations for deposit data
type DepositReader interface {
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDepositsByUser returns a page of the user's deposits, newest first,
	// and the token for the next page (nil on the last page).
	ListDepositsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Deposit, *string, error)
}

// DepositWriter defines write operations for deposit data
type DepositWriter interface {
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error

	// UpdateDepositStatus moves a deposit from expected to next. It returns
	// apperrors.ErrNotFound when no deposit with that id is in the expected state.
	UpdateDepositStatus(ctx context.Context, depositID string, expected, next domain.DepositStatus, actorID string, at time.Time) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
