package repositories

import (
	"context"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// PaymentFilter narrows a payment listing. Empty fields do not filter.
type PaymentFilter struct {
	PropertyID string
	AgentID    string
}

// PaymentReader defines read operations for payments and their allocations.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment of a company. Returns apperrors.ErrNotFound when absent.
	FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error)

	// ListPayments returns a page of payments, newest first, and a token for the next page.
	ListPayments(ctx context.Context, companyID string, filter PaymentFilter, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListPaymentsBySaleContract returns every payment of a sale contract, including reversals.
	ListPaymentsBySaleContract(ctx context.Context, companyID, saleContractID string) ([]domain.Payment, error)

	// ListAllocationRecords returns the finalized allocations of a company inside a period,
	// reversals included so that they net out in reports.
	ListAllocationRecords(ctx context.Context, companyID string, period domain.Period) ([]domain.AllocationRecord, error)

	// FindPropertyTotals returns the running totals of a property, one row per currency.
	FindPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error)
}

// PaymentWriter defines write operations. Each call is a single database transaction.
type PaymentWriter interface {
	// SavePayment inserts the payment with its allocation and adds it to the property running totals.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// SaveReversal inserts a reversal payment, marks the original as reversed and subtracts it
	// from the property running totals. Returns apperrors.ErrConflict if the original is already reversed.
	SaveReversal(ctx context.Context, reversal domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
