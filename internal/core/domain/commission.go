package domain

import (
	"github.com/shopspring/decimal"
)

// SaleMode tells whether a sale payment settles the full price or is one of several installments.
type SaleMode string

const (
	ModeQuick       SaleMode = "QUICK"
	ModeInstallment SaleMode = "INSTALLMENT"
)

// PaymentKind distinguishes rental collections from sale payments.
type PaymentKind string

const (
	KindRental PaymentKind = "RENTAL"
	KindSale   PaymentKind = "SALE"
)

// CommissionConfig is the percentage snapshot used to split a single payment.
// Values are copied into each PaymentInput so historical payments stay reproducible.
type CommissionConfig struct {
	CommissionPercent       decimal.Decimal `json:"commissionPercent"`       // percent of taxable base
	PREAPercentOfCommission decimal.Decimal `json:"preaPercentOfCommission"` // regulatory body share of commission
	AgencyPercentRemaining  decimal.Decimal `json:"agencyPercentRemaining"`  // agency share of the post-fee remainder
	VATRateOnCommission     decimal.Decimal `json:"vatRateOnCommission"`     // fraction in [0,1], not a percent
}

// AgentPercentRemaining is always derived from the agency share.
func (c CommissionConfig) AgentPercentRemaining() decimal.Decimal {
	return Hundred.Sub(c.AgencyPercentRemaining)
}

// WithAgencyPercent returns a copy with the agency share replaced. The agent share follows automatically.
func (c CommissionConfig) WithAgencyPercent(agency decimal.Decimal) CommissionConfig {
	c.AgencyPercentRemaining = agency
	return c
}

// Validate checks that every percentage lies in its allowed range.
func (c CommissionConfig) Validate() error {
	if err := CheckPercent("commissionPercent", c.CommissionPercent); err != nil {
		return err
	}
	if err := CheckPercent("preaPercentOfCommission", c.PREAPercentOfCommission); err != nil {
		return err
	}
	if err := CheckPercent("agencyPercentRemaining", c.AgencyPercentRemaining); err != nil {
		return err
	}
	return nil
}

// NewCommissionConfig builds a config from caller-supplied percentages.
// agentPercent is optional; when supplied it must complement agencyPercent to 100.
func NewCommissionConfig(commissionPercent, preaPercent, agencyPercent decimal.Decimal, agentPercent *decimal.Decimal, vatRateOnCommission decimal.Decimal) (CommissionConfig, error) {
	cfg := CommissionConfig{
		CommissionPercent:       commissionPercent,
		PREAPercentOfCommission: preaPercent,
		AgencyPercentRemaining:  agencyPercent,
		VATRateOnCommission:     vatRateOnCommission,
	}
	if err := cfg.Validate(); err != nil {
		return CommissionConfig{}, err
	}
	if agentPercent != nil {
		if err := CheckPercent("agentPercentRemaining", *agentPercent); err != nil {
			return CommissionConfig{}, err
		}
		if !agencyPercent.Add(*agentPercent).Equal(Hundred) {
			return CommissionConfig{}, &ConfigurationError{
				Field:  "agentPercentRemaining",
				Value:  agentPercent.String(),
				Reason: "agency and agent percentages of the remainder must add up to 100",
			}
		}
	}
	return cfg, nil
}

// PaymentInput is a single payment presented for commission distribution.
type PaymentInput struct {
	GrossAmount    decimal.Decimal  `json:"grossAmount"`
	Currency       string           `json:"currency"`
	VATIncluded    bool             `json:"vatIncluded"`
	VATRatePercent decimal.Decimal  `json:"vatRatePercent"`
	Config         CommissionConfig `json:"config"`
	Mode           SaleMode         `json:"mode"`
}

// CommissionAllocation is the reconciled split of one payment.
// It is created once at submission and never mutated afterwards.
type CommissionAllocation struct {
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	TaxableBase     decimal.Decimal `json:"taxableBase"`
	VATAmount       decimal.Decimal `json:"vatAmount"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	RegulatoryFee   decimal.Decimal `json:"regulatoryFee"`
	AgencyShare     decimal.Decimal `json:"agencyShare"`
	AgentShare      decimal.Decimal `json:"agentShare"`
	VATOnCommission decimal.Decimal `json:"vatOnCommission"`
	OwnerAmount     decimal.Decimal `json:"ownerAmount"`
}

// Negate returns the allocation with every amount sign-flipped, used for reversals.
func (a CommissionAllocation) Negate() CommissionAllocation {
	return CommissionAllocation{
		GrossAmount:     a.GrossAmount.Neg(),
		TaxableBase:     a.TaxableBase.Neg(),
		VATAmount:       a.VATAmount.Neg(),
		TotalCommission: a.TotalCommission.Neg(),
		RegulatoryFee:   a.RegulatoryFee.Neg(),
		AgencyShare:     a.AgencyShare.Neg(),
		AgentShare:      a.AgentShare.Neg(),
		VATOnCommission: a.VATOnCommission.Neg(),
		OwnerAmount:     a.OwnerAmount.Neg(),
	}
}

// Hundred is the percent base.
var Hundred = decimal.NewFromInt(100)

// MoneyPlaces is the scale amounts are presented at.
const MoneyPlaces int32 = 2

// Rounded returns the allocation with every amount rounded to MoneyPlaces for display.
// The stored allocation keeps full precision.
func (a CommissionAllocation) Rounded() CommissionAllocation {
	return CommissionAllocation{
		GrossAmount:     a.GrossAmount.Round(MoneyPlaces),
		TaxableBase:     a.TaxableBase.Round(MoneyPlaces),
		VATAmount:       a.VATAmount.Round(MoneyPlaces),
		TotalCommission: a.TotalCommission.Round(MoneyPlaces),
		RegulatoryFee:   a.RegulatoryFee.Round(MoneyPlaces),
		AgencyShare:     a.AgencyShare.Round(MoneyPlaces),
		AgentShare:      a.AgentShare.Round(MoneyPlaces),
		VATOnCommission: a.VATOnCommission.Round(MoneyPlaces),
		OwnerAmount:     a.OwnerAmount.Round(MoneyPlaces),
	}
}

// CheckPercent rejects a percentage outside [0,100] with a ConfigurationError naming field.
func CheckPercent(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(Hundred) {
		return &ConfigurationError{Field: field, Value: v.String(), Reason: "must be between 0 and 100"}
	}
	return nil
}
