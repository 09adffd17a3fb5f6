package commission

import "github.com/shopspring/decimal"

// ComputeOwnerAmount returns what is left for the owner or seller once VAT,
// the commission and VAT charged on the commission are taken out, together
// with that VAT on commission. The rate is a fraction clamped to [0,1] and
// the owner amount never goes below zero. Neither result is rounded.
func ComputeOwnerAmount(grossAmount, vatAmount, totalCommission, vatRateOnCommission decimal.Decimal) (ownerAmount, vatOnCommission decimal.Decimal) {
	netOfVAT := floorZero(grossAmount.Sub(vatAmount))
	vatOnCommission = clamp(vatRateOnCommission, decimal.Zero, one).Mul(totalCommission)
	ownerAmount = floorZero(netOfVAT.Sub(totalCommission).Sub(vatOnCommission))
	return ownerAmount, vatOnCommission
}
