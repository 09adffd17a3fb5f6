package commission

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// ComputeCommission applies commissionPercent to the taxable base.
// Out-of-range percentages are rejected, never clamped. The result keeps full
// precision; callers round at presentation.
func ComputeCommission(taxableBase, commissionPercent decimal.Decimal) (decimal.Decimal, error) {
	if err := domain.CheckPercent("commissionPercent", commissionPercent); err != nil {
		return decimal.Zero, err
	}
	return taxableBase.Mul(commissionPercent).Div(hundred), nil
}
