package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupBy selects both the grouping key and the share summed by a commission report.
type GroupBy string

const (
	GroupByAgent          GroupBy = "agent"          // key: agent, sums AgentShare
	GroupByAgency         GroupBy = "agency"         // key: company, sums AgencyShare
	GroupByRegulatoryBody GroupBy = "regulatoryBody" // key: company, sums RegulatoryFee
	GroupByProperty       GroupBy = "property"       // key: property, sums TotalCommission
)

// Valid reports whether g is a known grouping.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByAgent, GroupByAgency, GroupByRegulatoryBody, GroupByProperty:
		return true
	}
	return false
}

// Period is an inclusive date range. A zero bound is open.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the period, comparing calendar days.
func (p Period) Contains(t time.Time) bool {
	day := truncateDay(t)
	if !p.From.IsZero() && day.Before(truncateDay(p.From)) {
		return false
	}
	if !p.To.IsZero() && day.After(truncateDay(p.To)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contribution is one payment's share in a report group, kept for drill-down.
type Contribution struct {
	PaymentID   string          `json:"paymentID"`
	PaymentDate time.Time       `json:"paymentDate"`
	PropertyID  string          `json:"propertyID"`
	Amount      decimal.Decimal `json:"amount"`
}

// MonthlyTotal is the sum for one calendar month and the running total up to it.
type MonthlyTotal struct {
	Month      string          `json:"month"` // YYYY-MM
	Amount     decimal.Decimal `json:"amount"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// GroupTotals holds the totals of one grouping key in one currency.
type GroupTotals struct {
	Key      string          `json:"key"`
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	Months   []MonthlyTotal  `json:"months"`
	Payments []Contribution  `json:"payments"`
}

// CurrencyTotal is the grand total of a report in one currency.
type CurrencyTotal struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// ReportTotals is the output of the aggregation accumulator.
type ReportTotals struct {
	GroupBy     GroupBy         `json:"groupBy"`
	Period      Period          `json:"period"`
	Groups      []GroupTotals   `json:"groups"`
	GrandTotals []CurrencyTotal `json:"grandTotals"`
}

// Rounded returns a copy of the report with every amount rounded to MoneyPlaces.
func (r ReportTotals) Rounded() ReportTotals {
	out := r
	out.Groups = make([]GroupTotals, len(r.Groups))
	for i, g := range r.Groups {
		g.Total = g.Total.Round(MoneyPlaces)
		months := make([]MonthlyTotal, len(g.Months))
		for j, m := range g.Months {
			m.Amount = m.Amount.Round(MoneyPlaces)
			m.Cumulative = m.Cumulative.Round(MoneyPlaces)
			months[j] = m
		}
		payments := make([]Contribution, len(g.Payments))
		for j, c := range g.Payments {
			c.Amount = c.Amount.Round(MoneyPlaces)
			payments[j] = c
		}
		g.Months, g.Payments = months, payments
		out.Groups[i] = g
	}
	out.GrandTotals = make([]CurrencyTotal, len(r.GrandTotals))
	for i, gt := range r.GrandTotals {
		gt.Total = gt.Total.Round(MoneyPlaces)
		out.GrandTotals[i] = gt
	}
	return out
}
