package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/google/uuid"
)

// depositService records deposits with their platform split, settlement
// conversion and contractor attribution.
type depositService struct {
	BaseService
	depositRepo    portsrepo.DepositRepositoryFacade
	userRepo       portsrepo.UserReader
	contractorRepo portsrepo.ContractorReader
	converter      portssvc.CurrencyConverterSvc
	commission     portssvc.CommissionSvc
	publisher      gateways.DepositEventPublisher
	publishTimeout time.Duration
	now            func() time.Time
}

// DefaultDepositPublishTimeout bounds how long an event publish may hold a request.
const DefaultDepositPublishTimeout = 2 * time.Second

// DepositServiceOption is a functional option for configuring the deposit service
type DepositServiceOption func(*depositService)

// WithDepositEventPublisher sets where deposit events are published.
func WithDepositEventPublisher(p gateways.DepositEventPublisher) DepositServiceOption {
	return func(s *depositService) {
		s.publisher = p
	}
}

// WithDepositPublishTimeout bounds each event publish.
func WithDepositPublishTimeout(d time.Duration) DepositServiceOption {
	return func(s *depositService) {
		s.publishTimeout = d
	}
}

// WithDepositClock overrides the time source for audit fields.
func WithDepositClock(now func() time.Time) DepositServiceOption {
	return func(s *depositService) {
		s.now = now
	}
}

// NewDepositService creates a new deposit service with the provided options
func NewDepositService(
	depositRepo portsrepo.DepositRepositoryFacade,
	userRepo portsrepo.UserReader,
	contractorRepo portsrepo.ContractorReader,
	converter portssvc.CurrencyConverterSvc,
	commission portssvc.CommissionSvc,
	options ...DepositServiceOption,
) portssvc.DepositSvcFacade {
	svc := &depositService{
		depositRepo:    depositRepo,
		userRepo:       userRepo,
		contractorRepo: contractorRepo,
		converter:      converter,
		commission:     commission,
		publishTimeout: DefaultDepositPublishTimeout,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// CreateDeposit records a pending deposit for userID.
func (s *depositService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, userID string) (*domain.Deposit, error) {
	method := domain.DepositMethod(strings.ToUpper(strings.TrimSpace(req.Method)))
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unsupported deposit method '%s'", apperrors.ErrValidation, req.Method)
	}
	currency := domain.NormalizeCurrencyCode(req.Currency)
	if !domain.IsSupportedCurrency(currency) {
		return nil, fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, currency)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("deposit amount must be positive")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load depositing user: %w", err)
	}

	split, err := s.commission.SplitPlatformCommission(ctx, req.Amount)
	if err != nil {
		return nil, err
	}

	settlement, err := s.converter.ConvertWithQuote(ctx, split.Net, currency, user.SettlementCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to convert deposit into settlement currency: %w", err)
	}

	now := s.now().UTC()
	deposit := domain.Deposit{
		DepositID:          uuid.NewString(),
		UserID:             userID,
		Method:             method,
		Status:             domain.DepositStatusPending,
		Currency:           currency,
		RawAmount:          split.Raw,
		PlatformRate:       split.Rate.Decimal(),
		PlatformFee:        split.Fee,
		NetAmount:          split.Net,
		SettlementCurrency: settlement.To,
		SettlementAmount:   settlement.Converted,
		SettlementRate:     settlement.Quote.Rate,
		RateSource:         settlement.Quote.Source,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.attributeContractor(ctx, user, &deposit); err != nil {
		return nil, err
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save deposit", slog.String("deposit_id", deposit.DepositID))
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("method", string(method)),
		slog.String("currency", currency),
		slog.String("rate_source", string(deposit.RateSource)),
		slog.Bool("attributed", deposit.ContractorID != nil))

	s.publish(ctx, domain.DepositCreatedEvent, deposit)
	return &deposit, nil
}

// attributeContractor freezes the referring contractor and its rate on the deposit.
// Unknown or inactive referral codes leave the deposit unattributed.
func (s *depositService) attributeContractor(ctx context.Context, user *domain.User, deposit *domain.Deposit) error {
	if user.ReferralCode == nil || *user.ReferralCode == "" {
		return nil
	}

	contractor, err := s.contractorRepo.FindContractorByReferralCode(ctx, *user.ReferralCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, nil, "Referral code no longer matches a contractor", slog.String("referral_code", *user.ReferralCode))
			return nil
		}
		return fmt.Errorf("failed to resolve referring contractor: %w", err)
	}
	if !contractor.IsActive {
		s.LogInfo(ctx, "Referring contractor inactive, deposit not attributed", slog.String("contractor_id", contractor.ContractorID))
		return nil
	}

	fee, err := s.commission.ContractorCommission(ctx, deposit.NetAmount, contractor.CommissionRate)
	if err != nil {
		return err
	}
	rate := contractor.CommissionRate.Decimal()
	deposit.ContractorID = &contractor.ContractorID
	deposit.ContractorRate = &rate
	deposit.ContractorFee = &fee
	return nil
}

// GetDeposit returns a deposit owned by userID; other users' deposits are reported as not found.
func (s *depositService) GetDeposit(ctx context.Context, depositID, userID string) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	if deposit.UserID != userID {
		s.LogWarn(ctx, nil, "Deposit requested by non-owner", slog.String("deposit_id", depositID))
		return nil, apperrors.ErrNotFound
	}
	return deposit, nil
}

// ListDeposits returns a page of the user's deposits.
func (s *depositService) ListDeposits(ctx context.Context, userID string, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error) {
	deposits, nextToken, err := s.depositRepo.ListDepositsByUser(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	resp := dto.ToListDepositsResponse(deposits, nextToken)
	s.LogDebug(ctx, "Deposits listed", slog.Int("count", len(deposits)))
	return &resp, nil
}

// UpdateDepositStatus applies a back-office transition. Attribution is never changed.
func (s *depositService) UpdateDepositStatus(ctx context.Context, depositID string, status domain.DepositStatus, actorID string) (*domain.Deposit, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown deposit status '%s'", apperrors.ErrValidation, status)
	}

	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	if !deposit.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move deposit from %s to %s", apperrors.ErrValidation, deposit.Status, status)
	}

	now := s.now().UTC()
	if err := s.depositRepo.UpdateDepositStatus(ctx, depositID, deposit.Status, status, actorID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: deposit status changed concurrently, reload and retry", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to update deposit status", slog.String("deposit_id", depositID))
		return nil, fmt.Errorf("failed to update deposit status: %w", err)
	}

	previous := deposit.Status
	deposit.Status = status
	deposit.LastUpdatedAt = now
	deposit.LastUpdatedBy = actorID

	s.LogInfo(ctx, "Deposit status updated",
		slog.String("deposit_id", depositID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))

	s.publish(ctx, domain.DepositStatusChangedEvent, *deposit)
	return deposit, nil
}

// publish is best-effort: the deposit is already stored. It runs under its
// own deadline so a stalled broker cannot hold the request.
func (s *depositService) publish(ctx context.Context, eventType string, deposit domain.Deposit) {
	if s.publisher == nil {
		return
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishDepositEvent(publishCtx, domain.DepositEvent{Type: eventType, Deposit: deposit}); err != nil {
		s.LogWarn(ctx, err, "Failed to publish deposit event",
			slog.String("type", eventType),
			slog.String("deposit_id", deposit.DepositID))
	}
}
