package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/core/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DepositServiceTestSuite struct {
	suite.Suite
	now                time.Time
	mockDepositRepo    *MockDepositRepository
	mockUserRepo       *MockUserRepository
	mockContractorRepo *MockContractorRepository
	mockRates          *MockRateReader
	mockPublisher      *MockEventPublisher
	service            portssvc.DepositSvcFacade
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.now = time.Date(2025, 5, 2, 14, 30, 0, 0, time.UTC)
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockContractorRepo = new(MockContractorRepository)
	suite.mockRates = new(MockRateReader)
	suite.mockPublisher = new(MockEventPublisher)

	platformRate, err := domain.NewCommissionRate(dec("0.16"))
	suite.Require().NoError(err)

	suite.service = services.NewDepositService(
		suite.mockDepositRepo,
		suite.mockUserRepo,
		suite.mockContractorRepo,
		services.NewCurrencyService(suite.mockRates),
		services.NewCommissionService(platformRate),
		services.WithDepositEventPublisher(suite.mockPublisher),
		services.WithDepositClock(func() time.Time { return suite.now }),
	)
}

func (suite *DepositServiceTestSuite) contractor(id, code, rate string, active bool) *domain.Contractor {
	r, err := domain.NewCommissionRate(dec(rate))
	suite.Require().NoError(err)
	return &domain.Contractor{ContractorID: id, ReferralCode: code, CommissionRate: r, IsActive: active}
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_AttributedWithSettlementConversion() {
	code := "PARTNER1"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", SettlementCurrency: "USD", ReferralCode: &code}, nil).Once()
	suite.mockRates.On("Quote", mock.Anything, "EUR", "USD").
		Return(&domain.RateQuote{From: "EUR", To: "USD", Rate: dec("1.08"), Source: domain.RateSourceStatic}, nil).Once()
	suite.mockContractorRepo.On("FindContractorByReferralCode", mock.Anything, "PARTNER1").
		Return(suite.contractor("contractor-1", "PARTNER1", "0.0085", true), nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.AnythingOfType("domain.Deposit")).Return(nil).Once()
	suite.mockPublisher.On("PublishDepositEvent", mock.Anything, mock.MatchedBy(func(e domain.DepositEvent) bool {
		return e.Type == domain.DepositCreatedEvent && e.Deposit.UserID == "user-1"
	})).Return(nil).Once()

	deposit, err := suite.service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
		Method: "sepa", Amount: decimal.NewFromInt(1000), Currency: "eur",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DepositMethodSEPA, deposit.Method)
	suite.Equal(domain.DepositStatusPending, deposit.Status)
	suite.Equal("EUR", deposit.Currency)
	suite.True(dec("160").Equal(deposit.PlatformFee))
	suite.True(dec("840").Equal(deposit.NetAmount))
	suite.True(deposit.RawAmount.Equal(deposit.PlatformFee.Add(deposit.NetAmount)))
	suite.Equal("USD", deposit.SettlementCurrency)
	suite.Equal("907.20", deposit.SettlementAmount.StringFixed(2))
	suite.Equal(domain.RateSourceStatic, deposit.RateSource)

	suite.Require().NotNil(deposit.ContractorID)
	suite.Equal("contractor-1", *deposit.ContractorID)
	suite.Equal("0.0085", deposit.ContractorRate.String())
	suite.Equal("7.14", deposit.ContractorFee.StringFixed(2))
	suite.Equal(suite.now, deposit.CreatedAt)

	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_SameCurrencyNoReferral() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-2").
		Return(&domain.User{UserID: "user-2", SettlementCurrency: "GBP"}, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishDepositEvent", mock.Anything, mock.Anything).Return(nil).Once()

	deposit, err := suite.service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
		Method: "CRYPTO", Amount: dec("12.34"), Currency: "GBP",
	}, "user-2")

	suite.Require().NoError(err)
	// 12.34 * 0.16 = 1.9744
	suite.True(dec("1.97").Equal(deposit.PlatformFee))
	suite.True(dec("10.37").Equal(deposit.NetAmount))
	suite.True(deposit.NetAmount.Equal(deposit.SettlementAmount))
	suite.Equal(domain.RateSourceIdentity, deposit.RateSource)
	suite.Nil(deposit.ContractorID)
	suite.Nil(deposit.ContractorFee)
	suite.mockRates.AssertNotCalled(suite.T(), "Quote", mock.Anything, mock.Anything, mock.Anything)
	suite.mockContractorRepo.AssertNotCalled(suite.T(), "FindContractorByReferralCode", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_InactiveOrMissingContractorLeavesUnattributed() {
	inactive, missing := "OLD", "GONE"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-a").
		Return(&domain.User{UserID: "user-a", SettlementCurrency: "EUR", ReferralCode: &inactive}, nil)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-b").
		Return(&domain.User{UserID: "user-b", SettlementCurrency: "EUR", ReferralCode: &missing}, nil)
	suite.mockContractorRepo.On("FindContractorByReferralCode", mock.Anything, "OLD").
		Return(suite.contractor("contractor-old", "OLD", "0.01", false), nil)
	suite.mockContractorRepo.On("FindContractorByReferralCode", mock.Anything, "GONE").
		Return(nil, apperrors.ErrNotFound)
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(nil)
	suite.mockPublisher.On("PublishDepositEvent", mock.Anything, mock.Anything).Return(nil)

	for _, userID := range []string{"user-a", "user-b"} {
		deposit, err := suite.service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
			Method: "SEPA", Amount: decimal.NewFromInt(100), Currency: "EUR",
		}, userID)
		suite.Require().NoError(err)
		suite.Nil(deposit.ContractorID, userID)
	}
}

// stallingPublisher blocks like an unreachable broker until its context ends.
type stallingPublisher struct {
	sawErr chan error
}

func (p *stallingPublisher) PublishDepositEvent(ctx context.Context, _ domain.DepositEvent) error {
	select {
	case <-ctx.Done():
		p.sawErr <- ctx.Err()
		return ctx.Err()
	case <-time.After(30 * time.Second):
		p.sawErr <- nil
		return nil
	}
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_StalledPublisherDoesNotHoldRequest() {
	publisher := &stallingPublisher{sawErr: make(chan error, 1)}
	platformRate, err := domain.NewCommissionRate(dec("0.16"))
	suite.Require().NoError(err)
	service := services.NewDepositService(
		suite.mockDepositRepo,
		suite.mockUserRepo,
		suite.mockContractorRepo,
		services.NewCurrencyService(suite.mockRates),
		services.NewCommissionService(platformRate),
		services.WithDepositEventPublisher(publisher),
		services.WithDepositPublishTimeout(50*time.Millisecond),
	)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-s").
		Return(&domain.User{UserID: "user-s", SettlementCurrency: "EUR"}, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(nil).Once()

	// the request context has no deadline, as with a plain HTTP request
	start := time.Now()
	deposit, err := service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
		Method: "SEPA", Amount: decimal.NewFromInt(1000), Currency: "EUR",
	}, "user-s")
	elapsed := time.Since(start)

	suite.Require().NoError(err)
	suite.NotEmpty(deposit.DepositID)
	suite.Less(elapsed, 2*time.Second)
	suite.ErrorIs(<-publisher.sawErr, context.DeadlineExceeded)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_PublishSurvivesCancelledRequest() {
	ctx, cancel := context.WithCancel(quietCtx())
	defer cancel()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-c").
		Return(&domain.User{UserID: "user-c", SettlementCurrency: "EUR"}, nil).Once()
	// the client goes away right after the row is stored
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).Return(nil).Once()
	suite.mockPublisher.On("PublishDepositEvent", mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return ctx.Err() == nil && hasDeadline
	}), mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateDeposit(ctx, dto.CreateDepositRequest{
		Method: "SEPA", Amount: decimal.NewFromInt(10), Currency: "EUR",
	}, "user-c")

	suite.Require().NoError(err)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_Validation() {
	testCases := []struct {
		name string
		req  dto.CreateDepositRequest
	}{
		{"unknown method", dto.CreateDepositRequest{Method: "CARD", Amount: decimal.NewFromInt(10), Currency: "EUR"}},
		{"unsupported currency", dto.CreateDepositRequest{Method: "SEPA", Amount: decimal.NewFromInt(10), Currency: "JPY"}},
		{"zero amount", dto.CreateDepositRequest{Method: "SEPA", Amount: decimal.Zero, Currency: "EUR"}},
		{"negative amount", dto.CreateDepositRequest{Method: "SEPA", Amount: decimal.NewFromInt(-10), Currency: "EUR"}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateDeposit(quietCtx(), tc.req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_PublishFailureDoesNotFail() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", SettlementCurrency: "EUR"}, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("PublishDepositEvent", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	deposit, err := suite.service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
		Method: "SEPA", Amount: decimal.NewFromInt(50), Currency: "EUR",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(deposit.DepositID)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_SaveFailure() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", SettlementCurrency: "EUR"}, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreateDeposit(quietCtx(), dto.CreateDepositRequest{
		Method: "SEPA", Amount: decimal.NewFromInt(50), Currency: "EUR",
	}, "user-1")

	suite.ErrorIs(err, assert.AnError)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishDepositEvent", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestGetDeposit_OwnerOnly() {
	suite.mockDepositRepo.On("FindDepositByID", mock.Anything, "dep-1").
		Return(&domain.Deposit{DepositID: "dep-1", UserID: "owner"}, nil)

	deposit, err := suite.service.GetDeposit(quietCtx(), "dep-1", "owner")
	suite.Require().NoError(err)
	suite.Equal("dep-1", deposit.DepositID)

	_, err = suite.service.GetDeposit(quietCtx(), "dep-1", "someone-else")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DepositServiceTestSuite) TestListDeposits() {
	next := "token-2"
	suite.mockDepositRepo.On("ListDepositsByUser", mock.Anything, "user-1", 2, (*string)(nil)).
		Return([]domain.Deposit{{DepositID: "d2"}, {DepositID: "d1"}}, &next, nil).Once()

	resp, err := suite.service.ListDeposits(quietCtx(), "user-1", dto.ListDepositsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Deposits, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
}

func (suite *DepositServiceTestSuite) TestUpdateDepositStatus_Transitions() {
	testCases := []struct {
		name    string
		current domain.DepositStatus
		next    domain.DepositStatus
		allowed bool
	}{
		{"pending to processing", domain.DepositStatusPending, domain.DepositStatusProcessing, true},
		{"pending to failed", domain.DepositStatusPending, domain.DepositStatusFailed, true},
		{"processing to completed", domain.DepositStatusProcessing, domain.DepositStatusCompleted, true},
		{"pending to completed", domain.DepositStatusPending, domain.DepositStatusCompleted, false},
		{"completed to failed", domain.DepositStatusCompleted, domain.DepositStatusFailed, false},
		{"failed to processing", domain.DepositStatusFailed, domain.DepositStatusProcessing, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			contractorID := "contractor-1"
			suite.mockDepositRepo.On("FindDepositByID", mock.Anything, "dep-1").
				Return(&domain.Deposit{DepositID: "dep-1", Status: tc.current, ContractorID: &contractorID}, nil).Once()
			if tc.allowed {
				suite.mockDepositRepo.On("UpdateDepositStatus", mock.Anything, "dep-1", tc.current, tc.next, "admin-1", suite.now).Return(nil).Once()
				suite.mockPublisher.On("PublishDepositEvent", mock.Anything, mock.MatchedBy(func(e domain.DepositEvent) bool {
					return e.Type == domain.DepositStatusChangedEvent && e.Deposit.Status == tc.next
				})).Return(nil).Once()
			}

			deposit, err := suite.service.UpdateDepositStatus(quietCtx(), "dep-1", tc.next, "admin-1")

			if !tc.allowed {
				suite.ErrorIs(err, apperrors.ErrValidation)
				suite.mockDepositRepo.AssertNotCalled(suite.T(), "UpdateDepositStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tc.next, deposit.Status)
			suite.Equal("admin-1", deposit.LastUpdatedBy)
			suite.Equal("contractor-1", *deposit.ContractorID)
			suite.mockPublisher.AssertExpectations(suite.T())
		})
	}
}

func (suite *DepositServiceTestSuite) TestUpdateDepositStatus_ConcurrentChange() {
	suite.mockDepositRepo.On("FindDepositByID", mock.Anything, "dep-1").
		Return(&domain.Deposit{DepositID: "dep-1", Status: domain.DepositStatusPending}, nil).Once()
	suite.mockDepositRepo.On("UpdateDepositStatus", mock.Anything, "dep-1", domain.DepositStatusPending, domain.DepositStatusProcessing, "admin-1", suite.now).
		Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateDepositStatus(quietCtx(), "dep-1", domain.DepositStatusProcessing, "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishDepositEvent", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestUpdateDepositStatus_UnknownStatus() {
	_, err := suite.service.UpdateDepositStatus(quietCtx(), "dep-1", domain.DepositStatus("refunded"), "admin-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
