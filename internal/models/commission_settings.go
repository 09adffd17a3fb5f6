package models

import "github.com/shopspring/decimal"

// CommissionSettings is a row of the commission_settings table.
// An empty PropertyID marks the company default.
type CommissionSettings struct {
	CompanyID               string          `db:"company_id"`
	PropertyID              string          `db:"property_id"`
	CommissionPercent       decimal.Decimal `db:"commission_percent"`
	PREAPercentOfCommission decimal.Decimal `db:"prea_percent_of_commission"`
	AgencyPercentRemaining  decimal.Decimal `db:"agency_percent_remaining"`
	VATRateOnCommission     decimal.Decimal `db:"vat_rate_on_commission"`
	AuditFields
}
