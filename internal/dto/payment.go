package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// ConfigOverride replaces individual stored percentages for one payment.
// Ranges are checked by the engine so that bad values surface as configuration errors.
type ConfigOverride struct {
	CommissionPercent       *decimal.Decimal `json:"commissionPercent,omitempty"`
	PREAPercentOfCommission *decimal.Decimal `json:"preaPercentOfCommission,omitempty"`
	AgencyPercentRemaining  *decimal.Decimal `json:"agencyPercentRemaining,omitempty"`
	AgentPercentRemaining   *decimal.Decimal `json:"agentPercentRemaining,omitempty"`
	VATRateOnCommission     *decimal.Decimal `json:"vatRateOnCommission,omitempty"`
}

// SubmitPaymentRequest defines the data needed to post or preview a payment.
type SubmitPaymentRequest struct {
	PropertyID     string             `json:"propertyID" binding:"required"`
	AgentID        string             `json:"agentID" binding:"required"`
	Kind           domain.PaymentKind `json:"kind" binding:"required,oneof=RENTAL SALE"`
	Mode           domain.SaleMode    `json:"mode"`
	SaleContractID *string            `json:"saleContractID,omitempty"`
	TotalSalePrice *decimal.Decimal   `json:"totalSalePrice,omitempty"`
	GrossAmount    decimal.Decimal    `json:"grossAmount"`
	Currency       string             `json:"currency" binding:"required,len=3,uppercase"`
	VATIncluded    bool               `json:"vatIncluded"`
	VATRatePercent decimal.Decimal    `json:"vatRatePercent"`
	PaymentDate    time.Time          `json:"paymentDate" binding:"required"`
	Config         *ConfigOverride    `json:"config,omitempty"`
}

// PaymentResponse defines the data returned for a payment and its allocation.
type PaymentResponse struct {
	PaymentID          string                      `json:"paymentID,omitempty"`
	CompanyID          string                      `json:"companyID"`
	PropertyID         string                      `json:"propertyID"`
	AgentID            string                      `json:"agentID"`
	Kind               domain.PaymentKind          `json:"kind"`
	Mode               domain.SaleMode             `json:"mode,omitempty"`
	SaleContractID     *string                     `json:"saleContractID,omitempty"`
	TotalSalePrice     *decimal.Decimal            `json:"totalSalePrice,omitempty"`
	PaymentDate        time.Time                   `json:"paymentDate"`
	Currency           string                      `json:"currency"`
	VATIncluded        bool                        `json:"vatIncluded"`
	VATRatePercent     decimal.Decimal             `json:"vatRatePercent"`
	Config             CommissionConfigResponse    `json:"config"`
	Allocation         domain.CommissionAllocation `json:"allocation"`
	Status             domain.PaymentStatus        `json:"status,omitempty"`
	OriginalPaymentID  *string                     `json:"originalPaymentID,omitempty"`
	ReversingPaymentID *string                     `json:"reversingPaymentID,omitempty"`
	CreatedAt          *time.Time                  `json:"createdAt,omitempty"`
	CreatedBy          string                      `json:"createdBy,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	res := PaymentResponse{
		PaymentID:          p.PaymentID,
		CompanyID:          p.CompanyID,
		PropertyID:         p.PropertyID,
		AgentID:            p.AgentID,
		Kind:               p.Kind,
		Mode:               p.Input.Mode,
		SaleContractID:     p.SaleContractID,
		TotalSalePrice:     p.TotalSalePrice,
		PaymentDate:        p.PaymentDate,
		Currency:           p.Input.Currency,
		VATIncluded:        p.Input.VATIncluded,
		VATRatePercent:     p.Input.VATRatePercent,
		Config:             ToCommissionConfigResponse(p.Input.Config),
		Allocation:         p.Allocation.Rounded(),
		Status:             p.Status,
		OriginalPaymentID:  p.OriginalPaymentID,
		ReversingPaymentID: p.ReversingPaymentID,
		CreatedBy:          p.CreatedBy,
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		res.CreatedAt = &createdAt
	}
	return res
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit      int     `form:"limit,default=20" binding:"gte=0,lte=100"`
	NextToken  *string `form:"nextToken"`
	PropertyID string  `form:"propertyID"`
	AgentID    string  `form:"agentID"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// PropertyTotalsResponse lists the running totals of a property, one entry per currency.
type PropertyTotalsResponse struct {
	PropertyID string                  `json:"propertyID"`
	Totals     []domain.PropertyTotals `json:"totals"`
}

// ToPropertyTotalsResponse rounds each currency's totals for display.
func ToPropertyTotalsResponse(propertyID string, totals []domain.PropertyTotals) PropertyTotalsResponse {
	res := PropertyTotalsResponse{PropertyID: propertyID, Totals: make([]domain.PropertyTotals, len(totals))}
	for i, t := range totals {
		res.Totals[i] = t.Rounded()
	}
	return res
}
