package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table: the input, its config snapshot and the allocation.
type Payment struct {
	PaymentID      string           `db:"payment_id"`
	CompanyID      string           `db:"company_id"`
	PropertyID     string           `db:"property_id"`
	AgentID        string           `db:"agent_id"`
	SaleContractID *string          `db:"sale_contract_id"`
	TotalSalePrice *decimal.Decimal `db:"total_sale_price"`
	Kind           string           `db:"kind"`
	Mode           string           `db:"mode"` // '' for rentals
	PaymentDate    time.Time        `db:"payment_date"`
	CurrencyCode   string           `db:"currency_code"`
	VATIncluded    bool             `db:"vat_included"`
	VATRatePercent decimal.Decimal  `db:"vat_rate_percent"`

	CommissionPercent       decimal.Decimal `db:"commission_percent"`
	PREAPercentOfCommission decimal.Decimal `db:"prea_percent_of_commission"`
	AgencyPercentRemaining  decimal.Decimal `db:"agency_percent_remaining"`
	VATRateOnCommission     decimal.Decimal `db:"vat_rate_on_commission"`

	GrossAmount     decimal.Decimal `db:"gross_amount"`
	TaxableBase     decimal.Decimal `db:"taxable_base"`
	VATAmount       decimal.Decimal `db:"vat_amount"`
	TotalCommission decimal.Decimal `db:"total_commission"`
	RegulatoryFee   decimal.Decimal `db:"regulatory_fee"`
	AgencyShare     decimal.Decimal `db:"agency_share"`
	AgentShare      decimal.Decimal `db:"agent_share"`
	VATOnCommission decimal.Decimal `db:"vat_on_commission"`
	OwnerAmount     decimal.Decimal `db:"owner_amount"`

	Status             string  `db:"status"`
	OriginalPaymentID  *string `db:"original_payment_id"`
	ReversingPaymentID *string `db:"reversing_payment_id"`
	AuditFields
}

// PropertyTotals is a row of the property_totals table.
type PropertyTotals struct {
	CompanyID       string          `db:"company_id"`
	PropertyID      string          `db:"property_id"`
	CurrencyCode    string          `db:"currency_code"`
	TotalCollected  decimal.Decimal `db:"total_collected"`
	TotalCommission decimal.Decimal `db:"total_commission"`
	TotalOwnerNet   decimal.Decimal `db:"total_owner_net"`
	PaymentCount    int64           `db:"payment_count"`
	LastUpdatedAt   time.Time       `db:"last_updated_at"`
}
