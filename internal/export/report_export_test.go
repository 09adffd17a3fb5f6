package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

func sampleReport() *domain.ReportTotals {
	d := decimal.RequireFromString
	return &domain.ReportTotals{
		GroupBy: domain.GroupByAgent,
		Period:  domain.Period{From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		Groups: []domain.GroupTotals{{
			Key:      "agent-a",
			Currency: "USD",
			Total:    d("54.94"),
			Months: []domain.MonthlyTotal{
				{Month: "2025-01", Amount: d("45.24"), Cumulative: d("45.24")},
				{Month: "2025-03", Amount: d("9.70"), Cumulative: d("54.94")},
			},
			Payments: []domain.Contribution{
				{PaymentID: "p1", PaymentDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), PropertyID: "prop-1", Amount: d("21.00")},
				{PaymentID: "p2", PaymentDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), PropertyID: "prop-2", Amount: d("24.24")},
				{PaymentID: "p4", PaymentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), PropertyID: "prop-1", Amount: d("9.70")},
			},
		}},
		GrandTotals: []domain.CurrencyTotal{{Currency: "USD", Total: d("54.94")}},
	}
}

func TestBuildReportXLSX(t *testing.T) {
	data, err := BuildReportXLSX(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary", "groups", "monthly", "payments"}, f.GetSheetList())

	groupBy, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "agent", groupBy)

	from, _ := f.GetCellValue("summary", "B4")
	assert.Equal(t, "2025-01-01", from)

	total, _ := f.GetCellValue("groups", "C2")
	assert.Equal(t, "54.94", total)

	rows, err := f.GetRows("payments")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, []string{"agent-a", "USD", "p4", "2025-03-02", "prop-1", "9.7"}, rows[3])

	months, _ := f.GetRows("monthly")
	assert.Len(t, months, 3)
}

func TestBuildReportPDF(t *testing.T) {
	data, err := BuildReportPDF(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty := &domain.ReportTotals{GroupBy: domain.GroupByProperty}
	data, err = BuildReportPDF(empty)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")

	report := &domain.ReportTotals{GroupBy: domain.GroupByAgency, Period: domain.Period{To: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)}}
	assert.Equal(t, "commission-report-agency-start-2025-06-30.xlsx", Filename(report, FormatXLSX))
}
