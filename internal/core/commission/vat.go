package commission

import "github.com/shopspring/decimal"

// ExtractVAT separates a gross amount into its taxable base and VAT.
// The rate is clamped to [0,100] rather than rejected. When VAT is not
// included the gross passes through untouched. The base is not rounded, so
// taxableBase + vatAmount is exactly the gross.
func ExtractVAT(grossAmount decimal.Decimal, vatIncluded bool, vatRatePercent decimal.Decimal) (taxableBase, vatAmount decimal.Decimal) {
	if !vatIncluded {
		return grossAmount, decimal.Zero
	}
	rate := clamp(vatRatePercent, decimal.Zero, hundred).Div(hundred)
	taxableBase = grossAmount.Div(one.Add(rate))
	vatAmount = floorZero(grossAmount.Sub(taxableBase))
	return taxableBase, vatAmount
}
