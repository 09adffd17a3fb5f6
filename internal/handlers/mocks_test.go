package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPayment(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, companyID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) GetSaleProgress(ctx context.Context, companyID, saleContractID string) (*domain.SaleProgress, error) {
	args := m.Called(ctx, companyID, saleContractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleProgress), args.Error(1)
}

func (m *MockPaymentService) GetPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error) {
	args := m.Called(ctx, companyID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTotals), args.Error(1)
}

func (m *MockPaymentService) PreviewPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) SubmitPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ReversePayment(ctx context.Context, companyID, paymentID, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) ResolveConfig(ctx context.Context, companyID, propertyID string) (domain.CommissionConfig, error) {
	args := m.Called(ctx, companyID, propertyID)
	return args.Get(0).(domain.CommissionConfig), args.Error(1)
}

func (m *MockSettingsService) GetCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsService) GetPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsService) UpsertCompanySettings(ctx context.Context, companyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsService) UpsertPropertySettings(ctx context.Context, companyID, propertyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID, propertyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsService) SeedCompanyDefaults(ctx context.Context, defaults []domain.CommissionSettings) (int, error) {
	args := m.Called(ctx, defaults)
	return args.Int(0), args.Error(1)
}

var _ portssvc.CommissionSettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context, companyID string, groupBy domain.GroupBy, period domain.Period) (*domain.ReportTotals, error) {
	args := m.Called(ctx, companyID, groupBy, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTotals), args.Error(1)
}

var _ portssvc.CommissionReportSvc = (*MockReportService)(nil)
