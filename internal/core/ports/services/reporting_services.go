package services

import (
	"context"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// CommissionReportSvc builds commission reports from finalized allocations.
type CommissionReportSvc interface {
	GenerateReport(ctx context.Context, companyID string, groupBy domain.GroupBy, period domain.Period) (*domain.ReportTotals, error)
}
