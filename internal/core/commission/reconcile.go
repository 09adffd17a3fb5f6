package commission

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// Validate checks that the three shares add up to the total commission and
// that commission, VAT on commission, owner amount and VAT add up to the gross.
// A mismatch is returned as is; nothing is adjusted to force a match.
func Validate(a domain.CommissionAllocation) error {
	shares := a.RegulatoryFee.Add(a.AgencyShare).Add(a.AgentShare)
	if err := within(domain.CheckSharesVsTotal, a.TotalCommission, shares); err != nil {
		return err
	}

	allocated := a.TotalCommission.Add(a.VATOnCommission).Add(a.OwnerAmount).Add(a.VATAmount)
	return within(domain.CheckAllocationVsGross, a.GrossAmount, allocated)
}

func within(check domain.ReconciliationCheck, expected, actual decimal.Decimal) error {
	delta := actual.Sub(expected)
	if delta.Abs().GreaterThan(Tolerance) {
		return &domain.ReconciliationError{
			Check:    check,
			Expected: expected,
			Actual:   actual,
			Delta:    delta,
		}
	}
	return nil
}
