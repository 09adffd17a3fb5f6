// Package commission turns a single payment into a reconciled split between
// the regulatory body, the agency, the agent and the property owner or seller,
// and folds finalized splits into report totals.
//
// Every function in this package is pure: no I/O, no logging, no shared state.
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// MoneyPlaces is the number of decimal places split shares are rounded to.
const MoneyPlaces = domain.MoneyPlaces

var (
	// Tolerance is the largest absolute difference the reconciliation validator accepts.
	Tolerance = decimal.RequireFromString("0.02")

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
