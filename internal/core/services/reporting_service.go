package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/commission"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/observability/metrics"
)

type commissionReportService struct {
	BaseService
	paymentRepo portsrepo.PaymentReader
	metrics     *metrics.Metrics
}

// NewCommissionReportService creates the report service. m may be nil.
func NewCommissionReportService(paymentRepo portsrepo.PaymentReader, m *metrics.Metrics) portssvc.CommissionReportSvc {
	return &commissionReportService{paymentRepo: paymentRepo, metrics: m}
}

var _ portssvc.CommissionReportSvc = (*commissionReportService)(nil)

// GenerateReport always recomputes from the full set of finalized allocations in the period.
func (s *commissionReportService) GenerateReport(ctx context.Context, companyID string, groupBy domain.GroupBy, period domain.Period) (*domain.ReportTotals, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.From.After(period.To) {
		return nil, fmt.Errorf("%w: report period starts after it ends", apperrors.ErrValidation)
	}
	if !groupBy.Valid() {
		return nil, &domain.ConfigurationError{Field: "groupBy", Value: string(groupBy), Reason: "must be agent, agency, regulatoryBody or property"}
	}

	records, err := s.paymentRepo.ListAllocationRecords(ctx, companyID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load allocation records", slog.String("company_id", companyID))
		return nil, err
	}

	report, err := commission.Accumulate(records, groupBy, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to accumulate commission report", slog.String("company_id", companyID), slog.String("group_by", string(groupBy)))
		return nil, err
	}

	s.metrics.ObserveReport(groupBy)
	s.LogInfo(ctx, "Commission report generated",
		slog.String("group_by", string(groupBy)),
		slog.Int("records", len(records)),
		slog.Int("groups", len(report.Groups)),
	)
	return &report, nil
}
