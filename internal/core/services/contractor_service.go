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

type contractorService struct {
	BaseService
	contractorRepo portsrepo.ContractorRepositoryFacade
}

// NewContractorService creates a new contractor service.
func NewContractorService(repo portsrepo.ContractorRepositoryFacade) portssvc.ContractorSvcFacade {
	return &contractorService{contractorRepo: repo}
}

var _ portssvc.ContractorSvcFacade = (*contractorService)(nil)

// CreateContractor onboards a contractor with a unique referral code.
func (s *contractorService) CreateContractor(ctx context.Context, req dto.CreateContractorRequest, creatorUserID string) (*domain.Contractor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	code := strings.ToUpper(strings.TrimSpace(req.ReferralCode))
	if code == "" {
		return nil, apperrors.NewValidationError("referral code is required")
	}
	rate, err := domain.NewCommissionRate(req.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	contractor := domain.Contractor{
		ContractorID:   uuid.NewString(),
		Name:           name,
		ReferralCode:   code,
		CommissionRate: rate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.contractorRepo.SaveContractor(ctx, contractor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: referral code '%s' already in use", apperrors.ErrDuplicate, code)
		}
		s.LogError(ctx, err, "Failed to save contractor", slog.String("referral_code", code))
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}

	s.LogInfo(ctx, "Contractor created",
		slog.String("contractor_id", contractor.ContractorID),
		slog.String("referral_code", code),
		slog.String("commission_rate", rate.String()))
	return &contractor, nil
}

// SetContractorActive toggles whether the referral code still attributes new
// deposits and registrations. Deposits already attributed keep their contractor.
func (s *contractorService) SetContractorActive(ctx context.Context, contractorID string, isActive bool, actorID string) (*domain.Contractor, error) {
	contractor, err := s.contractorRepo.UpdateContractorActive(ctx, contractorID, isActive, actorID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update contractor status", slog.String("contractor_id", contractorID))
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}

	s.LogInfo(ctx, "Contractor status changed",
		slog.String("contractor_id", contractorID),
		slog.Bool("is_active", isActive))
	return contractor, nil
}

func (s *contractorService) GetContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}
	return contractor, nil
}

func (s *contractorService) ListContractors(ctx context.Context, params dto.ListContractorsParams) ([]domain.Contractor, error) {
	contractors, err := s.contractorRepo.ListContractors(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	return contractors, nil
}
