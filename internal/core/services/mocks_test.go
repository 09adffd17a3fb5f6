package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryWithTx = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, companyID string, filter portsrepo.PaymentFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, companyID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Payment), returnedNextToken, args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsBySaleContract(ctx context.Context, companyID, saleContractID string) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, saleContractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListAllocationRecords(ctx context.Context, companyID string, period domain.Period) ([]domain.AllocationRecord, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllocationRecord), args.Error(1)
}

func (m *MockPaymentRepository) FindPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error) {
	args := m.Called(ctx, companyID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTotals), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) SaveReversal(ctx context.Context, reversal domain.Payment) error {
	return m.Called(ctx, reversal).Error(0)
}

// --- Mock CommissionSettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.CommissionSettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsRepository) FindPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error) {
	args := m.Called(ctx, companyID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertSettings(ctx context.Context, settings domain.CommissionSettings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockSettingsRepository) InsertCompanySettingsIfAbsent(ctx context.Context, settings domain.CommissionSettings) (bool, error) {
	args := m.Called(ctx, settings)
	return args.Bool(0), args.Error(1)
}

// --- Mock CommissionConfigResolver ---
type MockConfigResolver struct {
	mock.Mock
}

var _ portssvc.CommissionConfigResolver = (*MockConfigResolver)(nil)

func (m *MockConfigResolver) ResolveConfig(ctx context.Context, companyID, propertyID string) (domain.CommissionConfig, error) {
	args := m.Called(ctx, companyID, propertyID)
	return args.Get(0).(domain.CommissionConfig), args.Error(1)
}
