package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/commission"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/observability/metrics"
	"github.com/SscSPs/estate_commission/internal/utils"
	"github.com/SscSPs/estate_commission/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	eventPaymentSubmitted = "payment_submitted"
	eventPaymentReversed  = "payment_reversed"
)

// paymentService computes allocations and posts payments.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryWithTx
	resolver    portssvc.CommissionConfigResolver
	metrics     *metrics.Metrics
	events      *utils.PosthogClientWrapper
	now         func() time.Time
}

// PaymentServiceOption configures optional collaborators of the payment service.
type PaymentServiceOption func(*paymentService)

// WithPaymentMetrics counts every engine run.
func WithPaymentMetrics(m *metrics.Metrics) PaymentServiceOption {
	return func(s *paymentService) { s.metrics = m }
}

// WithPaymentEvents sends product analytics events for posted payments.
func WithPaymentEvents(events *utils.PosthogClientWrapper) PaymentServiceOption {
	return func(s *paymentService) { s.events = events }
}

// WithPaymentClock overrides the clock used for audit fields.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) { s.now = now }
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, resolver portssvc.CommissionConfigResolver, opts ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo: paymentRepo,
		resolver:    resolver,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) PreviewPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest) (*domain.Payment, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.buildPayment(ctx, companyID, req)
}

func (s *paymentService) SubmitPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest, userID string) (*domain.Payment, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	payment, err := s.buildPayment(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	payment.PaymentID = uuid.NewString()
	payment.Status = domain.PaymentPosted
	payment.AuditFields = domain.NewAuditFields(userID, s.now())

	if err := s.paymentRepo.SavePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("company_id", companyID), slog.String("property_id", payment.PropertyID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.LogInfo(ctx, "Payment posted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("property_id", payment.PropertyID),
		slog.String("total_commission", payment.Allocation.TotalCommission.String()),
	)
	s.events.Enqueue(userID, eventPaymentSubmitted, paymentEventProps(payment))
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, companyID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, companyID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	filter := portsrepo.PaymentFilter{PropertyID: params.PropertyID, AgentID: params.AgentID}

	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, companyID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("company_id", companyID))
		return nil, err
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}

func (s *paymentService) ReversePayment(ctx context.Context, companyID, paymentID, userID string) (*domain.Payment, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	original, err := s.paymentRepo.FindPaymentByID(ctx, companyID, paymentID)
	if err != nil {
		return nil, err
	}
	if original.IsReversal() {
		return nil, fmt.Errorf("%w: payment %s is itself a reversal", apperrors.ErrConflict, paymentID)
	}
	if original.Status == domain.PaymentReversed {
		return nil, fmt.Errorf("%w: payment %s is already reversed", apperrors.ErrConflict, paymentID)
	}

	reversal := domain.Payment{
		PaymentID:         uuid.NewString(),
		CompanyID:         original.CompanyID,
		PropertyID:        original.PropertyID,
		AgentID:           original.AgentID,
		SaleContractID:    original.SaleContractID,
		TotalSalePrice:    original.TotalSalePrice,
		Kind:              original.Kind,
		PaymentDate:       original.PaymentDate,
		Input:             original.Input,
		Allocation:        original.Allocation.Negate(),
		Status:            domain.PaymentPosted,
		OriginalPaymentID: &original.PaymentID,
		AuditFields:       domain.NewAuditFields(userID, s.now()),
	}
	if err := commission.Validate(reversal.Allocation); err != nil {
		s.LogError(ctx, err, "Stored allocation does not reconcile", slog.String("payment_id", paymentID))
		return nil, err
	}

	if err := s.paymentRepo.SaveReversal(ctx, reversal); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save reversal", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	s.LogInfo(ctx, "Payment reversed", slog.String("payment_id", paymentID), slog.String("reversal_id", reversal.PaymentID))
	s.events.Enqueue(userID, eventPaymentReversed, paymentEventProps(&reversal))
	return &reversal, nil
}

func (s *paymentService) GetSaleProgress(ctx context.Context, companyID, saleContractID string) (*domain.SaleProgress, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsBySaleContract(ctx, companyID, saleContractID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sale payments", slog.String("sale_contract_id", saleContractID))
		return nil, err
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: no payments for sale contract %s", apperrors.ErrNotFound, saleContractID)
	}

	price, known := contractPrice(payments)
	progress := commission.SummarizeSale(saleContractID, price, payments)
	if !known {
		// A quick sale settles the whole price in one payment.
		progress.TotalSalePrice = progress.PaidToDate
		progress.Outstanding = decimal.Zero
	}
	return &progress, nil
}

func (s *paymentService) GetPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	totals, err := s.paymentRepo.FindPropertyTotals(ctx, companyID, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load property totals", slog.String("property_id", propertyID))
		return nil, err
	}
	return totals, nil
}

// buildPayment resolves the config snapshot and runs the engine. Nothing is persisted.
func (s *paymentService) buildPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest) (*domain.Payment, error) {
	mode, err := paymentMode(req)
	if err != nil {
		return nil, err
	}

	cfg, err := s.resolver.ResolveConfig(ctx, companyID, req.PropertyID)
	if err != nil {
		return nil, err
	}
	cfg, err = applyOverride(cfg, req.Config)
	if err != nil {
		s.metrics.ObserveCalculation(err)
		return nil, err
	}

	input := domain.PaymentInput{
		GrossAmount:    req.GrossAmount,
		Currency:       req.Currency,
		VATIncluded:    req.VATIncluded,
		VATRatePercent: req.VATRatePercent,
		Config:         cfg,
		Mode:           mode,
	}

	allocation, err := commission.Calculate(input)
	s.metrics.ObserveCalculation(err)
	if err != nil {
		var recErr *domain.ReconciliationError
		if errors.As(err, &recErr) {
			s.LogError(ctx, err, "Allocation failed reconciliation", slog.String("check", string(recErr.Check)), slog.String("delta", recErr.Delta.String()))
		} else {
			s.LogInfo(ctx, "Payment rejected by commission engine", slog.String("error", err.Error()))
		}
		return nil, err
	}

	return &domain.Payment{
		CompanyID:      companyID,
		PropertyID:     req.PropertyID,
		AgentID:        req.AgentID,
		SaleContractID: req.SaleContractID,
		TotalSalePrice: req.TotalSalePrice,
		Kind:           req.Kind,
		PaymentDate:    req.PaymentDate,
		Input:          input,
		Allocation:     allocation,
	}, nil
}

func paymentMode(req dto.SubmitPaymentRequest) (domain.SaleMode, error) {
	switch req.Kind {
	case domain.KindRental:
		if req.Mode != "" {
			return "", fmt.Errorf("%w: mode applies to sale payments only", apperrors.ErrValidation)
		}
		if req.SaleContractID != nil || req.TotalSalePrice != nil {
			return "", fmt.Errorf("%w: rental payments carry no sale contract", apperrors.ErrValidation)
		}
		return "", nil
	case domain.KindSale:
		if req.SaleContractID == nil || *req.SaleContractID == "" {
			return "", fmt.Errorf("%w: saleContractID is required for sale payments", apperrors.ErrValidation)
		}
		if req.TotalSalePrice != nil && req.TotalSalePrice.IsNegative() {
			return "", fmt.Errorf("%w: totalSalePrice must not be negative", apperrors.ErrValidation)
		}
		if req.Mode == "" {
			return domain.ModeQuick, nil
		}
		if req.Mode == domain.ModeInstallment && req.TotalSalePrice == nil {
			return "", fmt.Errorf("%w: totalSalePrice is required for installment sales", apperrors.ErrValidation)
		}
		return req.Mode, nil
	default:
		return "", fmt.Errorf("%w: unknown payment kind %q", apperrors.ErrValidation, req.Kind)
	}
}

// applyOverride replaces stored percentages with per-payment values. Ranges are left to the engine.
func applyOverride(cfg domain.CommissionConfig, o *dto.ConfigOverride) (domain.CommissionConfig, error) {
	if o == nil {
		return cfg, nil
	}
	if o.CommissionPercent != nil {
		cfg.CommissionPercent = *o.CommissionPercent
	}
	if o.PREAPercentOfCommission != nil {
		cfg.PREAPercentOfCommission = *o.PREAPercentOfCommission
	}
	if o.AgencyPercentRemaining != nil {
		cfg = cfg.WithAgencyPercent(*o.AgencyPercentRemaining)
	}
	if o.VATRateOnCommission != nil {
		cfg.VATRateOnCommission = *o.VATRateOnCommission
	}
	if o.AgentPercentRemaining != nil && !o.AgentPercentRemaining.Equal(cfg.AgentPercentRemaining()) {
		return domain.CommissionConfig{}, &domain.ConfigurationError{
			Field:  "agentPercentRemaining",
			Value:  o.AgentPercentRemaining.String(),
			Reason: "agency and agent percentages of the remainder must add up to 100",
		}
	}
	return cfg, nil
}

// contractPrice returns the most recent total sale price recorded on the contract's payments.
func contractPrice(payments []domain.Payment) (decimal.Decimal, bool) {
	for i := len(payments) - 1; i >= 0; i-- {
		if payments[i].TotalSalePrice != nil {
			return *payments[i].TotalSalePrice, true
		}
	}
	return decimal.Zero, false
}

func paymentEventProps(p *domain.Payment) map[string]any {
	return map[string]any{
		"company_id":       p.CompanyID,
		"property_id":      p.PropertyID,
		"kind":             string(p.Kind),
		"mode":             string(p.Input.Mode),
		"currency":         p.Input.Currency,
		"gross_amount":     p.Allocation.GrossAmount.String(),
		"total_commission": p.Allocation.TotalCommission.String(),
		"reversal":         p.IsReversal(),
	}
}
