package services

import (
	"context"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	"github.com/SscSPs/estate_commission/internal/dto"
)

// PaymentReaderSvc defines read operations for payments.
type PaymentReaderSvc interface {
	// GetPayment retrieves a payment with its allocation.
	GetPayment(ctx context.Context, companyID, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a page of payments of a company.
	ListPayments(ctx context.Context, companyID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)

	// GetSaleProgress summarizes the installments paid against a sale contract.
	GetSaleProgress(ctx context.Context, companyID, saleContractID string) (*domain.SaleProgress, error)

	// GetPropertyTotals returns the running totals of a property.
	GetPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error)
}

// PaymentWriterSvc defines operations that compute and post allocations.
type PaymentWriterSvc interface {
	// PreviewPayment computes the allocation without persisting anything.
	PreviewPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest) (*domain.Payment, error)

	// SubmitPayment computes, validates and persists a payment with its allocation.
	SubmitPayment(ctx context.Context, companyID string, req dto.SubmitPaymentRequest, userID string) (*domain.Payment, error)

	// ReversePayment posts the negation of a payment and marks the original as reversed.
	ReversePayment(ctx context.Context, companyID, paymentID, userID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
