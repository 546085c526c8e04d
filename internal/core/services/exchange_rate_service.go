package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/cache"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRateFetchTimeout = 5 * time.Second
	refreshFlightKey        = "latest"
)

// exchangeRateService resolves rates from the cache, the upstream provider and
// finally the static table, in that order.
type exchangeRateService struct {
	BaseService
	cache        *cache.RatesCache
	fetcher      gateways.RateFetcher
	snapshotRepo portsrepo.RateSnapshotRepository
	fetchTimeout time.Duration
	static       *domain.RateTable
	group        singleflight.Group
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithRateSnapshotRepository persists every live fetch and enables Warm.
func WithRateSnapshotRepository(repo portsrepo.RateSnapshotRepository) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.snapshotRepo = repo
	}
}

// WithRateFetchTimeout bounds a single upstream fetch.
func WithRateFetchTimeout(d time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(rateCache *cache.RatesCache, fetcher gateways.RateFetcher, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		cache:        rateCache,
		fetcher:      fetcher,
		fetchTimeout: defaultRateFetchTimeout,
		static:       domain.StaticRateTable(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetRate returns units of to per one unit of from.
func (s *exchangeRateService) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	quote, err := s.Quote(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Rate, nil
}

// Quote returns the rate for a pair and where it came from.
func (s *exchangeRateService) Quote(ctx context.Context, from, to string) (*domain.RateQuote, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}

	if from == to {
		return &domain.RateQuote{From: from, To: to, Rate: decimal.NewFromInt(1), Source: domain.RateSourceIdentity}, nil
	}

	table, source := s.resolveTable(ctx)
	if rate, ok := table.Rate(from, to); ok {
		return &domain.RateQuote{From: from, To: to, Rate: rate, Source: source, FetchedAt: table.FetchedAt}, nil
	}

	if source != domain.RateSourceStatic {
		s.LogWarn(ctx, nil, "Pair missing from rate table, using static rate",
			slog.String("from", from), slog.String("to", to), slog.String("table_source", string(source)))
	}
	if rate, ok := s.static.Rate(from, to); ok {
		return &domain.RateQuote{From: from, To: to, Rate: rate, Source: domain.RateSourceStatic}, nil
	}

	return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrRateUnavailable, from, to)
}

// CurrentTable returns the table the next lookup would use.
func (s *exchangeRateService) CurrentTable(ctx context.Context) (*domain.RateTable, domain.RateSource, error) {
	table, source := s.resolveTable(ctx)
	return table, source, nil
}

// Refresh forces an upstream fetch regardless of cache freshness.
func (s *exchangeRateService) Refresh(ctx context.Context) (*domain.RateTable, error) {
	table, err := s.refresh(ctx)
	if err != nil {
		s.LogError(ctx, err, "Forced exchange rate refresh failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	s.LogInfo(ctx, "Exchange rates refreshed", slog.Time("fetched_at", table.FetchedAt))
	return table, nil
}

// Warm seeds the cache from the latest persisted snapshot. A missing snapshot is not an error.
func (s *exchangeRateService) Warm(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}

	snap, err := s.snapshotRepo.FindLatestRateSnapshot(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No persisted rate snapshot to warm the cache from")
			return nil
		}
		return fmt.Errorf("failed to load latest rate snapshot: %w", err)
	}

	table := domain.NewCrossRateTable(snap.Base, snap.Quotes, snap.FetchedAt)
	s.cache.Store(table)
	_, fresh := s.cache.Get()
	s.LogInfo(ctx, "Rate cache warmed from snapshot",
		slog.String("snapshot_id", snap.SnapshotID),
		slog.Time("fetched_at", snap.FetchedAt),
		slog.Bool("fresh", fresh))
	return nil
}

// resolveTable picks the fresh cache, a live fetch, the stale cache or the static table.
func (s *exchangeRateService) resolveTable(ctx context.Context) (*domain.RateTable, domain.RateSource) {
	cached, fresh := s.cache.Get()
	if fresh {
		return cached, domain.RateSourceCached
	}

	table, err := s.refresh(ctx)
	if err == nil {
		return table, domain.RateSourceLive
	}

	if cached != nil {
		s.LogWarn(ctx, err, "Exchange rate refresh failed, serving stale cache",
			slog.Duration("age", s.cache.Now().Sub(cached.FetchedAt)))
		return cached, domain.RateSourceStale
	}

	s.LogWarn(ctx, err, "Exchange rate refresh failed, serving static rates")
	return s.static, domain.RateSourceStatic
}

// refresh fetches and caches a new table. Concurrent callers share one upstream request.
func (s *exchangeRateService) refresh(ctx context.Context) (*domain.RateTable, error) {
	v, err, _ := s.group.Do(refreshFlightKey, func() (interface{}, error) {
		// detached from the caller so one cancelled request cannot fail the shared fetch
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		snap, err := s.fetcher.FetchLatest(fetchCtx)
		if err != nil {
			return nil, err
		}

		table := domain.NewCrossRateTable(snap.Base, snap.Quotes, snap.FetchedAt)
		if !s.cache.Store(table) {
			if current, _ := s.cache.Get(); current != nil {
				table = current
			}
		}
		s.persistSnapshot(fetchCtx, *snap)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.RateTable), nil
}

func (s *exchangeRateService) persistSnapshot(ctx context.Context, snap domain.RateSnapshot) {
	if s.snapshotRepo == nil {
		return
	}
	if err := s.snapshotRepo.SaveRateSnapshot(ctx, snap); err != nil {
		s.LogWarn(ctx, err, "Failed to persist rate snapshot", slog.String("snapshot_id", snap.SnapshotID))
	}
}

// normalizePair upper-cases both codes and rejects unsupported ones.
func normalizePair(from, to string) (string, string, error) {
	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	if !domain.IsSupportedCurrency(from) {
		return "", "", fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, from)
	}
	if !domain.IsSupportedCurrency(to) {
		return "", "", fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, to)
	}
	return from, to, nil
}
