package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/evokeessence/evoke_backend/internal/apperrors"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portsrepo "github.com/evokeessence/evoke_backend/internal/core/ports/repositories"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo     portsrepo.ReportingRepository
	contractorRepo    portsrepo.ContractorReader
	converter         portssvc.CurrencyConverterSvc
	reportingCurrency string
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingCurrency sets the currency report totals are expressed in.
func WithReportingCurrency(code string) ReportingServiceOption {
	return func(s *reportingService) {
		s.reportingCurrency = domain.NormalizeCurrencyCode(code)
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	repo portsrepo.ReportingRepository,
	contractorRepo portsrepo.ContractorReader,
	converter portssvc.CurrencyConverterSvc,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo:     repo,
		contractorRepo:    contractorRepo,
		converter:         converter,
		reportingCurrency: domain.CurrencyEUR,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// PlatformCommissionReport sums platform fees for deposits created between from and to, inclusive.
func (s *reportingService) PlatformCommissionReport(ctx context.Context, from, to time.Time) (*domain.PlatformCommissionReport, error) {
	end, err := reportWindowEnd(from, to)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetPlatformCommissionTotals(ctx, from, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve platform commission totals",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve platform commission totals: %w", err)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Currency < totals[j].Currency })

	report := &domain.PlatformCommissionReport{
		From:              from,
		To:                to,
		Totals:            totals,
		ReportingCurrency: s.reportingCurrency,
		TotalRawAmount:    decimal.Zero,
		TotalPlatformFee:  decimal.Zero,
	}
	for _, t := range totals {
		raw, err := s.converter.Convert(ctx, t.RawAmount, t.Currency, s.reportingCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s totals: %w", t.Currency, err)
		}
		fee, err := s.converter.Convert(ctx, t.PlatformFee, t.Currency, s.reportingCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s totals: %w", t.Currency, err)
		}
		report.TotalRawAmount = report.TotalRawAmount.Add(raw)
		report.TotalPlatformFee = report.TotalPlatformFee.Add(fee)
	}

	s.LogInfo(ctx, "Platform commission report generated",
		slog.Int("currency_count", len(totals)),
		slog.String("total_fee", report.TotalPlatformFee.String()))
	return report, nil
}

// ContractorCommissionReport recomputes each attributed deposit's contractor fee from its
// net amount and frozen rate, and sums per currency.
func (s *reportingService) ContractorCommissionReport(ctx context.Context, contractorID string, from, to time.Time) (*domain.ContractorCommissionReport, error) {
	end, err := reportWindowEnd(from, to)
	if err != nil {
		return nil, err
	}

	if _, err := s.contractorRepo.FindContractorByID(ctx, contractorID); err != nil {
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}

	deposits, err := s.reportingRepo.ListAttributedDeposits(ctx, contractorID, from, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve attributed deposits", slog.String("contractor_id", contractorID))
		return nil, fmt.Errorf("failed to retrieve attributed deposits: %w", err)
	}

	byCurrency := make(map[string]*domain.ContractorCurrencyTotals)
	for _, d := range deposits {
		rate, err := domain.NewCommissionRate(d.ContractorRate)
		if err != nil {
			return nil, fmt.Errorf("deposit %s carries an invalid contractor rate: %w", d.DepositID, err)
		}
		fee, err := accounting.ContractorCommission(d.NetAmount, rate)
		if err != nil {
			return nil, fmt.Errorf("deposit %s: %w", d.DepositID, err)
		}

		t, ok := byCurrency[d.Currency]
		if !ok {
			t = &domain.ContractorCurrencyTotals{Currency: d.Currency, NetAmount: decimal.Zero, Commission: decimal.Zero}
			byCurrency[d.Currency] = t
		}
		t.DepositCount++
		t.NetAmount = t.NetAmount.Add(d.NetAmount)
		t.Commission = t.Commission.Add(fee)
	}

	report := &domain.ContractorCommissionReport{
		ContractorID:      contractorID,
		From:              from,
		To:                to,
		Totals:            make([]domain.ContractorCurrencyTotals, 0, len(byCurrency)),
		ReportingCurrency: s.reportingCurrency,
		TotalCommission:   decimal.Zero,
	}
	for _, t := range byCurrency {
		report.Totals = append(report.Totals, *t)
	}
	sort.Slice(report.Totals, func(i, j int) bool { return report.Totals[i].Currency < report.Totals[j].Currency })

	for _, t := range report.Totals {
		converted, err := s.converter.Convert(ctx, t.Commission, t.Currency, s.reportingCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s commission: %w", t.Currency, err)
		}
		report.TotalCommission = report.TotalCommission.Add(converted)
	}

	s.LogInfo(ctx, "Contractor commission report generated",
		slog.String("contractor_id", contractorID),
		slog.Int("deposit_count", len(deposits)),
		slog.String("total_commission", report.TotalCommission.String()))
	return report, nil
}

// reportWindowEnd returns the exclusive end of an inclusive [from, to] day window.
func reportWindowEnd(from, to time.Time) (time.Time, error) {
	if to.Before(from) {
		return time.Time{}, fmt.Errorf("%w: 'to' date must not be before 'from' date", apperrors.ErrValidation)
	}
	return to.AddDate(0, 0, 1), nil
}
