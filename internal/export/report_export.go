package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

const dateLayout = "2006-01-02"

// Format is a commission report download format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// Filename names the downloaded report file.
func Filename(report *domain.ReportTotals, f Format) string {
	return fmt.Sprintf("commission-report-%s-%s-%s.%s", report.GroupBy, periodBound(report.Period.From, "start"), periodBound(report.Period.To, "now"), f)
}

// BuildReportXLSX renders a report as a workbook with summary, groups, monthly and payments sheets.
func BuildReportXLSX(report *domain.ReportTotals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	groupsSheet := "groups"
	monthlySheet := "monthly"
	paymentsSheet := "payments"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	for _, name := range []string{groupsSheet, monthlySheet, paymentsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Commission Report")
	_ = f.SetCellValue(summarySheet, "A3", "Group By")
	_ = f.SetCellValue(summarySheet, "B3", string(report.GroupBy))
	_ = f.SetCellValue(summarySheet, "A4", "From")
	_ = f.SetCellValue(summarySheet, "B4", periodBound(report.Period.From, "-"))
	_ = f.SetCellValue(summarySheet, "A5", "To")
	_ = f.SetCellValue(summarySheet, "B5", periodBound(report.Period.To, "-"))
	_ = f.SetCellValue(summarySheet, "A7", "Currency")
	_ = f.SetCellValue(summarySheet, "B7", "Grand Total")
	for i, gt := range report.GrandTotals {
		row := i + 8
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), gt.Currency)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), gt.Total.InexactFloat64())
	}

	_ = f.SetSheetRow(groupsSheet, "A1", &[]any{"Key", "Currency", "Total"})
	_ = f.SetSheetRow(monthlySheet, "A1", &[]any{"Key", "Currency", "Month", "Amount", "Cumulative"})
	_ = f.SetSheetRow(paymentsSheet, "A1", &[]any{"Key", "Currency", "Payment ID", "Payment Date", "Property", "Amount"})

	monthRow, paymentRow := 2, 2
	for i, g := range report.Groups {
		_ = f.SetSheetRow(groupsSheet, fmt.Sprintf("A%d", i+2), &[]any{g.Key, g.Currency, g.Total.InexactFloat64()})
		for _, m := range g.Months {
			_ = f.SetSheetRow(monthlySheet, fmt.Sprintf("A%d", monthRow), &[]any{g.Key, g.Currency, m.Month, m.Amount.InexactFloat64(), m.Cumulative.InexactFloat64()})
			monthRow++
		}
		for _, p := range g.Payments {
			_ = f.SetSheetRow(paymentsSheet, fmt.Sprintf("A%d", paymentRow), &[]any{g.Key, g.Currency, p.PaymentID, p.PaymentDate.Format(dateLayout), p.PropertyID, p.Amount.InexactFloat64()})
			paymentRow++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReportPDF renders a printable report: grand totals, then one table of months per group.
func BuildReportPDF(report *domain.ReportTotals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Commission Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Group by: %s", report.GroupBy))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", periodBound(report.Period.From, "start"), periodBound(report.Period.To, "now")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Grand totals")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	for _, gt := range report.GrandTotals {
		pdf.Cell(0, 6, fmt.Sprintf("%s %s", gt.Currency, gt.Total.StringFixed(2)))
		pdf.Ln(5)
	}
	if len(report.Groups) == 0 {
		pdf.Cell(0, 6, "No payments in period.")
		pdf.Ln(5)
	}

	for _, g := range report.Groups {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%s (%s): %s", g.Key, g.Currency, g.Total.StringFixed(2)))
		pdf.Ln(7)
		pdf.CellFormat(40, 6, "Month", "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, "Amount", "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, "Cumulative", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, m := range g.Months {
			pdf.CellFormat(40, 6, m.Month, "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 6, m.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, m.Cumulative.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func periodBound(t time.Time, open string) string {
	if t.IsZero() {
		return open
	}
	return t.Format(dateLayout)
}
