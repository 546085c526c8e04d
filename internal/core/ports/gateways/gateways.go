package gateways

import (
	"context"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// RateFetcher retrieves the latest quotes from an upstream rate provider.
// The returned snapshot holds quotes per one unit of its Base.
type RateFetcher interface {
	FetchLatest(ctx context.Context) (*domain.RateSnapshot, error)
}

// DepositEventPublisher emits deposit lifecycle events to downstream consumers.
type DepositEventPublisher interface {
	PublishDepositEvent(ctx context.Context, event domain.DepositEvent) error
}
