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
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/dto"
	"github.com/google/uuid"
)

// userService provides business logic for user registration and lookup.
type userService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	contractorRepo portsrepo.ContractorReader
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, contractorRepo portsrepo.ContractorReader) portssvc.UserSvcFacade {
	return &userService{
		userRepo:       userRepo,
		contractorRepo: contractorRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a user. A referral code must name an active contractor.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	settlement := domain.NormalizeCurrencyCode(req.SettlementCurrency)
	if !domain.IsSupportedCurrency(settlement) {
		return nil, fmt.Errorf("%w: settlement currency '%s'", apperrors.ErrUnsupportedCurrency, settlement)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	var referral *string
	if code := strings.ToUpper(strings.TrimSpace(req.ReferralCode)); code != "" {
		contractor, err := s.contractorRepo.FindContractorByReferralCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown referral code '%s'", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to look up referral code: %w", err)
		}
		if !contractor.IsActive {
			return nil, fmt.Errorf("%w: referral code '%s' is no longer active", apperrors.ErrValidation, code)
		}
		referral = &contractor.ReferralCode
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:             userID,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Name:               name,
		SettlementCurrency: settlement,
		ReferralCode:       referral,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID), slog.Bool("referred", referral != nil))
	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user in service: %w", err)
	}
	return user, nil
}
