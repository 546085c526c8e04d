package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/cache"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	now          time.Time
	rateCache    *cache.RatesCache
	mockFetcher  *MockRateFetcher
	mockSnapshot *MockRateSnapshotRepository
	service      portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.now = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	suite.rateCache = cache.NewRatesCache(60*time.Minute, cache.WithClock(func() time.Time { return suite.now }))
	suite.mockFetcher = new(MockRateFetcher)
	suite.mockSnapshot = new(MockRateSnapshotRepository)
	suite.service = services.NewExchangeRateService(
		suite.rateCache,
		suite.mockFetcher,
		services.WithRateSnapshotRepository(suite.mockSnapshot),
		services.WithRateFetchTimeout(time.Second),
	)
}

func (suite *ExchangeRateServiceTestSuite) liveSnapshot(quotes map[string]decimal.Decimal) *domain.RateSnapshot {
	return &domain.RateSnapshot{SnapshotID: "snap-1", Base: "EUR", Quotes: quotes, FetchedAt: suite.now}
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_Identity() {
	quote, err := suite.service.Quote(quietCtx(), "usd", "USD")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1).Equal(quote.Rate))
	suite.Equal(domain.RateSourceIdentity, quote.Source)
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_UnsupportedCurrency() {
	for _, pair := range [][2]string{{"EUR", "JPY"}, {"XXX", "EUR"}, {"", "USD"}} {
		_, err := suite.service.Quote(quietCtx(), pair[0], pair[1])
		suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_LiveThenCached() {
	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.10"), "GBP": dec("0.85"), "CHF": dec("0.95")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, *snap).Return(nil).Once()

	first, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, first.Source)
	suite.True(dec("1.10").Equal(first.Rate))

	suite.now = suite.now.Add(30 * time.Minute)
	second, err := suite.service.Quote(quietCtx(), "eur", "usd")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceCached, second.Source)
	suite.True(first.Rate.Equal(second.Rate))
	suite.Equal(snap.FetchedAt, second.FetchedAt)

	suite.mockFetcher.AssertExpectations(suite.T())
	suite.mockSnapshot.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_RefetchesAfterExpiry() {
	first := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.10")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(first, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)

	suite.now = suite.now.Add(61 * time.Minute)
	second := &domain.RateSnapshot{SnapshotID: "snap-2", Base: "EUR", Quotes: map[string]decimal.Decimal{"USD": dec("1.12")}, FetchedAt: suite.now}
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(second, nil).Once()

	quote, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, quote.Source)
	suite.True(dec("1.12").Equal(quote.Rate))
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_StaleCacheWhenRefreshFails() {
	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.10"), "GBP": dec("0.85")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)

	suite.now = suite.now.Add(2 * time.Hour)
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	quote, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err, "fallback must not surface as an error")
	suite.Equal(domain.RateSourceStale, quote.Source)
	suite.True(dec("1.10").Equal(quote.Rate))
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_StaticWhenNoCacheAndFetchFails() {
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, errors.New("dial tcp: timeout"))

	rate, err := suite.service.GetRate(quietCtx(), "EUR", "GBP")
	suite.Require().NoError(err)
	suite.True(dec("0.86").Equal(rate), "got %s", rate)

	quote, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceStatic, quote.Source)
	suite.True(dec("1.08").Equal(quote.Rate))

	// a failed fetch must not populate the cache
	table, _ := suite.rateCache.Get()
	suite.Nil(table)
	suite.mockSnapshot.AssertNotCalled(suite.T(), "SaveRateSnapshot", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_MissingPairFallsBackToStatic() {
	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.10")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(nil)

	quote, err := suite.service.Quote(quietCtx(), "EUR", "GBP")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceStatic, quote.Source)
	suite.True(dec("0.86").Equal(quote.Rate))
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_SnapshotSaveFailureIsIgnored() {
	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.10")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	quote, err := suite.service.Quote(quietCtx(), "USD", "EUR")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, quote.Source)
}

func (suite *ExchangeRateServiceTestSuite) TestQuote_ReciprocalFromLiveTable() {
	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.0875"), "GBP": dec("0.8531"), "CHF": dec("0.9612")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(nil)

	ab, err := suite.service.GetRate(quietCtx(), "GBP", "CHF")
	suite.Require().NoError(err)
	ba, err := suite.service.GetRate(quietCtx(), "CHF", "GBP")
	suite.Require().NoError(err)

	product, _ := ab.Mul(ba).Float64()
	suite.InDelta(1.0, product, 1e-9)
}

func (suite *ExchangeRateServiceTestSuite) TestRefresh_ReportsFetchError() {
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, errors.New("invalid-key")).Once()

	table, err := suite.service.Refresh(quietCtx())
	suite.Nil(table)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *ExchangeRateServiceTestSuite) TestRefresh_ReplacesFreshCache() {
	suite.rateCache.Store(domain.NewCrossRateTable("EUR", map[string]decimal.Decimal{"USD": dec("1.00")}, suite.now.Add(-time.Minute)))

	snap := suite.liveSnapshot(map[string]decimal.Decimal{"USD": dec("1.20")})
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(snap, nil).Once()
	suite.mockSnapshot.On("SaveRateSnapshot", mock.Anything, mock.Anything).Return(nil)

	table, err := suite.service.Refresh(quietCtx())
	suite.Require().NoError(err)
	rate, ok := table.Rate("EUR", "USD")
	suite.True(ok)
	suite.True(dec("1.20").Equal(rate))

	current, source, err := suite.service.CurrentTable(quietCtx())
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceCached, source)
	suite.Same(table, current)
}

func (suite *ExchangeRateServiceTestSuite) TestCurrentTable_Static() {
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, errors.New("down"))

	table, source, err := suite.service.CurrentTable(quietCtx())
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceStatic, source)
	suite.Equal("EUR", table.Base)
}

func (suite *ExchangeRateServiceTestSuite) TestWarm_FromRecentSnapshot() {
	snap := &domain.RateSnapshot{SnapshotID: "persisted", Base: "EUR", Quotes: map[string]decimal.Decimal{"USD": dec("1.09")}, FetchedAt: suite.now.Add(-10 * time.Minute)}
	suite.mockSnapshot.On("FindLatestRateSnapshot", mock.Anything).Return(snap, nil).Once()

	suite.Require().NoError(suite.service.Warm(quietCtx()))

	quote, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceCached, quote.Source)
	suite.True(dec("1.09").Equal(quote.Rate))
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchLatest", mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestWarm_OldSnapshotServedAsStale() {
	snap := &domain.RateSnapshot{SnapshotID: "old", Base: "EUR", Quotes: map[string]decimal.Decimal{"USD": dec("1.05")}, FetchedAt: suite.now.Add(-5 * time.Hour)}
	suite.mockSnapshot.On("FindLatestRateSnapshot", mock.Anything).Return(snap, nil).Once()
	suite.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, errors.New("down"))

	suite.Require().NoError(suite.service.Warm(quietCtx()))

	quote, err := suite.service.Quote(quietCtx(), "EUR", "USD")
	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceStale, quote.Source)
	suite.True(dec("1.05").Equal(quote.Rate))
}

func (suite *ExchangeRateServiceTestSuite) TestWarm_NoSnapshot() {
	suite.mockSnapshot.On("FindLatestRateSnapshot", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.NoError(suite.service.Warm(quietCtx()))

	suite.mockSnapshot.On("FindLatestRateSnapshot", mock.Anything).Return(nil, assert.AnError).Once()
	suite.ErrorIs(suite.service.Warm(quietCtx()), assert.AnError)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

// countingFetcher blocks briefly so concurrent callers overlap.
type countingFetcher struct {
	calls int32
}

func (f *countingFetcher) FetchLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(50 * time.Millisecond)
	return &domain.RateSnapshot{Base: "EUR", Quotes: domain.StaticEURQuotes(), FetchedAt: time.Now()}, nil
}

func TestExchangeRateService_ConcurrentCallersShareOneFetch(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := services.NewExchangeRateService(cache.NewRatesCache(time.Hour), fetcher)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetRate(quietCtx(), "EUR", "CHF")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
}

func TestExchangeRateService_CancelledCallerDoesNotFailFetch(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := services.NewExchangeRateService(cache.NewRatesCache(time.Hour), fetcher)

	ctx, cancel := context.WithCancel(quietCtx())
	cancel()

	quote, err := svc.Quote(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, domain.RateSourceLive, quote.Source)
}
