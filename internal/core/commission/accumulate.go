package commission

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// ErrDuplicateRecord is returned when the same payment appears twice in an accumulation input.
var ErrDuplicateRecord = errors.New("payment appears more than once in allocation set")

type groupKey struct {
	key      string
	currency string
}

type groupAcc struct {
	total    decimal.Decimal
	months   map[string]decimal.Decimal
	payments []domain.Contribution
}

// Accumulate sums finalized allocations per grouping key and currency over a period.
// Decimal addition is exact and every output slice is sorted, so the result does not
// depend on the order of records. Currencies are never mixed.
func Accumulate(records []domain.AllocationRecord, groupBy domain.GroupBy, period domain.Period) (domain.ReportTotals, error) {
	if !groupBy.Valid() {
		return domain.ReportTotals{}, &domain.ConfigurationError{Field: "groupBy", Value: string(groupBy), Reason: "must be agent, agency, regulatoryBody or property"}
	}

	seen := make(map[string]struct{}, len(records))
	groups := make(map[groupKey]*groupAcc)
	grand := make(map[string]decimal.Decimal)

	for _, rec := range records {
		if _, dup := seen[rec.PaymentID]; dup {
			return domain.ReportTotals{}, fmt.Errorf("%w: %s", ErrDuplicateRecord, rec.PaymentID)
		}
		seen[rec.PaymentID] = struct{}{}

		if !period.Contains(rec.PaymentDate) {
			continue
		}

		amount := shareFor(groupBy, rec.Allocation)
		gk := groupKey{key: keyFor(groupBy, rec), currency: rec.Currency}
		acc, ok := groups[gk]
		if !ok {
			acc = &groupAcc{total: decimal.Zero, months: make(map[string]decimal.Decimal)}
			groups[gk] = acc
		}

		month := rec.PaymentDate.UTC().Format("2006-01")
		acc.total = acc.total.Add(amount)
		acc.months[month] = acc.months[month].Add(amount)
		acc.payments = append(acc.payments, domain.Contribution{
			PaymentID:   rec.PaymentID,
			PaymentDate: rec.PaymentDate,
			PropertyID:  rec.PropertyID,
			Amount:      amount,
		})
		grand[rec.Currency] = grand[rec.Currency].Add(amount)
	}

	report := domain.ReportTotals{
		GroupBy:     groupBy,
		Period:      period,
		Groups:      make([]domain.GroupTotals, 0, len(groups)),
		GrandTotals: make([]domain.CurrencyTotal, 0, len(grand)),
	}
	for gk, acc := range groups {
		report.Groups = append(report.Groups, domain.GroupTotals{
			Key:      gk.key,
			Currency: gk.currency,
			Total:    acc.total,
			Months:   monthlyTotals(acc.months),
			Payments: sortContributions(acc.payments),
		})
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		if report.Groups[i].Key != report.Groups[j].Key {
			return report.Groups[i].Key < report.Groups[j].Key
		}
		return report.Groups[i].Currency < report.Groups[j].Currency
	})

	for currency, total := range grand {
		report.GrandTotals = append(report.GrandTotals, domain.CurrencyTotal{Currency: currency, Total: total})
	}
	sort.Slice(report.GrandTotals, func(i, j int) bool {
		return report.GrandTotals[i].Currency < report.GrandTotals[j].Currency
	})

	return report, nil
}

func shareFor(groupBy domain.GroupBy, a domain.CommissionAllocation) decimal.Decimal {
	switch groupBy {
	case domain.GroupByAgent:
		return a.AgentShare
	case domain.GroupByAgency:
		return a.AgencyShare
	case domain.GroupByRegulatoryBody:
		return a.RegulatoryFee
	default:
		return a.TotalCommission
	}
}

func keyFor(groupBy domain.GroupBy, rec domain.AllocationRecord) string {
	switch groupBy {
	case domain.GroupByAgent:
		return rec.AgentID
	case domain.GroupByProperty:
		return rec.PropertyID
	default:
		return rec.CompanyID
	}
}

func monthlyTotals(months map[string]decimal.Decimal) []domain.MonthlyTotal {
	keys := make([]string, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}
	sort.Strings(keys)

	out := make([]domain.MonthlyTotal, len(keys))
	running := decimal.Zero
	for i, m := range keys {
		running = running.Add(months[m])
		out[i] = domain.MonthlyTotal{Month: m, Amount: months[m], Cumulative: running}
	}
	return out
}

func sortContributions(cs []domain.Contribution) []domain.Contribution {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].PaymentDate.Equal(cs[j].PaymentDate) {
			return cs[i].PaymentDate.Before(cs[j].PaymentDate)
		}
		return cs[i].PaymentID < cs[j].PaymentID
	})
	return cs
}

// SummarizeSale reports how much of a sale contract has been paid. Reversal
// payments carry negated amounts and net out; they are not counted as installments.
func SummarizeSale(contractID string, totalSalePrice decimal.Decimal, payments []domain.Payment) domain.SaleProgress {
	progress := domain.SaleProgress{
		SaleContractID:   contractID,
		TotalSalePrice:   totalSalePrice,
		PaidToDate:       decimal.Zero,
		CommissionToDate: decimal.Zero,
	}
	for _, p := range payments {
		if progress.Currency == "" {
			progress.Currency = p.Input.Currency
		}
		progress.PaidToDate = progress.PaidToDate.Add(p.Allocation.GrossAmount)
		progress.CommissionToDate = progress.CommissionToDate.Add(p.Allocation.TotalCommission)
		if p.IsReversal() {
			progress.InstallmentCount--
		} else {
			progress.InstallmentCount++
		}
	}
	progress.Outstanding = floorZero(totalSalePrice.Sub(progress.PaidToDate))
	return progress
}
