package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates whether a payment still counts towards totals.
type PaymentStatus string

const (
	PaymentPosted   PaymentStatus = "POSTED"
	PaymentReversed PaymentStatus = "REVERSED"
)

// Payment is a finalized payment with its reconciled commission allocation.
type Payment struct {
	PaymentID      string               `json:"paymentID"`
	CompanyID      string               `json:"companyID"`
	PropertyID     string               `json:"propertyID"`
	AgentID        string               `json:"agentID"`
	SaleContractID *string              `json:"saleContractID,omitempty"` // set for sale payments
	TotalSalePrice *decimal.Decimal     `json:"totalSalePrice,omitempty"` // contract price, installment sales only
	Kind           PaymentKind          `json:"kind"`
	PaymentDate    time.Time            `json:"paymentDate"`
	Input          PaymentInput         `json:"input"`
	Allocation     CommissionAllocation `json:"allocation"`
	Status         PaymentStatus        `json:"status"`
	// Reversal linkage. A reversal carries OriginalPaymentID, the original carries ReversingPaymentID.
	OriginalPaymentID  *string `json:"originalPaymentID,omitempty"`
	ReversingPaymentID *string `json:"reversingPaymentID,omitempty"`
	AuditFields
}

// IsReversal reports whether this payment cancels another one.
func (p Payment) IsReversal() bool {
	return p.OriginalPaymentID != nil
}

// Record projects the payment into the shape consumed by the aggregation accumulator.
func (p Payment) Record() AllocationRecord {
	return AllocationRecord{
		PaymentID:   p.PaymentID,
		CompanyID:   p.CompanyID,
		PropertyID:  p.PropertyID,
		AgentID:     p.AgentID,
		Currency:    p.Input.Currency,
		PaymentDate: p.PaymentDate,
		Allocation:  p.Allocation,
	}
}

// AllocationRecord is a finalized allocation plus the keys reports group by.
type AllocationRecord struct {
	PaymentID   string               `json:"paymentID"`
	CompanyID   string               `json:"companyID"`
	PropertyID  string               `json:"propertyID"`
	AgentID     string               `json:"agentID"`
	Currency    string               `json:"currency"`
	PaymentDate time.Time            `json:"paymentDate"`
	Allocation  CommissionAllocation `json:"allocation"`
}

// PropertyTotals are the running per-property sums maintained by the persistence layer.
type PropertyTotals struct {
	PropertyID      string          `json:"propertyID"`
	CompanyID       string          `json:"companyID"`
	Currency        string          `json:"currency"`
	TotalCollected  decimal.Decimal `json:"totalCollected"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	TotalOwnerNet   decimal.Decimal `json:"totalOwnerNet"`
	PaymentCount    int64           `json:"paymentCount"`
}

// Rounded returns the totals rounded to MoneyPlaces.
func (t PropertyTotals) Rounded() PropertyTotals {
	t.TotalCollected = t.TotalCollected.Round(MoneyPlaces)
	t.TotalCommission = t.TotalCommission.Round(MoneyPlaces)
	t.TotalOwnerNet = t.TotalOwnerNet.Round(MoneyPlaces)
	return t
}

// SaleProgress summarizes the installments paid against a sale contract.
type SaleProgress struct {
	SaleContractID   string          `json:"saleContractID"`
	Currency         string          `json:"currency"`
	TotalSalePrice   decimal.Decimal `json:"totalSalePrice"`
	PaidToDate       decimal.Decimal `json:"paidToDate"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	InstallmentCount int             `json:"installmentCount"`
	CommissionToDate decimal.Decimal `json:"commissionToDate"`
}

// Rounded returns the progress with its amounts rounded to MoneyPlaces.
func (s SaleProgress) Rounded() SaleProgress {
	s.TotalSalePrice = s.TotalSalePrice.Round(MoneyPlaces)
	s.PaidToDate = s.PaidToDate.Round(MoneyPlaces)
	s.Outstanding = s.Outstanding.Round(MoneyPlaces)
	s.CommissionToDate = s.CommissionToDate.Round(MoneyPlaces)
	return s
}

// CommissionSettings is a stored CommissionConfig for a company, optionally scoped to a property.
type CommissionSettings struct {
	CompanyID  string           `json:"companyID"`
	PropertyID *string          `json:"propertyID,omitempty"` // nil for the company default
	Config     CommissionConfig `json:"config"`
	AuditFields
}
