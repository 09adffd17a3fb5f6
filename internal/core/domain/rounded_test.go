package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

func TestReportTotals_RoundedLeavesSourceIntact(t *testing.T) {
	exact := decimal.RequireFromString("43.2900432900432900")
	report := domain.ReportTotals{
		GroupBy: domain.GroupByAgent,
		Groups: []domain.GroupTotals{{
			Key:      "agent-1",
			Currency: "USD",
			Total:    exact,
			Months:   []domain.MonthlyTotal{{Month: "2025-01", Amount: exact, Cumulative: exact}},
			Payments: []domain.Contribution{{PaymentID: "p1", Amount: exact}},
		}},
		GrandTotals: []domain.CurrencyTotal{{Currency: "USD", Total: exact}},
	}

	rounded := report.Rounded()

	require.Len(t, rounded.Groups, 1)
	assert.Equal(t, "43.29", rounded.Groups[0].Total.String())
	assert.Equal(t, "43.29", rounded.Groups[0].Months[0].Cumulative.String())
	assert.Equal(t, "43.29", rounded.Groups[0].Payments[0].Amount.String())
	assert.Equal(t, "43.29", rounded.GrandTotals[0].Total.String())

	assert.True(t, report.Groups[0].Months[0].Amount.Equal(exact))
	assert.True(t, report.GrandTotals[0].Total.Equal(exact))
}

func TestCommissionAllocation_Rounded(t *testing.T) {
	a := domain.CommissionAllocation{
		TaxableBase: decimal.RequireFromString("865.8008658008658009"),
		OwnerAmount: decimal.RequireFromString("815.8008658008658009"),
	}
	r := a.Rounded()
	assert.Equal(t, "865.8", r.TaxableBase.String())
	assert.Equal(t, "815.8", r.OwnerAmount.String())
	assert.True(t, r.GrossAmount.IsZero())
}
