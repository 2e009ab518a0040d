package renderer

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

const (
	pageWidth  = 190.0 // A4 minus 10mm margins
	lineHeight = 7.0
	fontFamily = "Helvetica"

	// accent colour #2563EB
	accentR = 0x25
	accentG = 0x63
	accentB = 0xEB
)

func newDocument(title string, header adapter.DocumentHeader) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(title, true)
	pdf.SetCreator(header.Company, true)
	pdf.SetCreationDate(header.GeneratedAt)
	pdf.SetModificationDate(header.GeneratedAt)
	pdf.AddPage()
	return pdf
}

func title(pdf *fpdf.Fpdf, heading, subtitle string) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetTextColor(0x1E, 0x40, 0xAF)
	pdf.CellFormat(pageWidth, 9, heading, "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(0x66, 0x66, 0x66)
	pdf.CellFormat(pageWidth, 6, fit(pdf, subtitle, pageWidth), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(accentR, accentG, accentB)
	pdf.SetLineWidth(0.8)
	y := pdf.GetY() + 2
	pdf.Line(10, y, 10+pageWidth, y)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0xE5, 0xE7, 0xEB)
	pdf.SetTextColor(0x33, 0x33, 0x33)
	pdf.Ln(8)
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string, aligns []string) {
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(accentR, accentG, accentB)
	pdf.SetTextColor(0xFF, 0xFF, 0xFF)
	for i, label := range labels {
		pdf.CellFormat(widths[i], lineHeight, label, "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0x33, 0x33, 0x33)
	pdf.SetFont(fontFamily, "", 9)
}

// fit shortens s until it fits in width w and converts it to the core font
// encoding. Truncation works on the UTF-8 text so multi-byte characters are
// never split.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if out := tr(s); pdf.GetStringWidth(out) <= w-2 {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+"...")) > w-2 {
		runes = runes[:len(runes)-1]
	}
	return tr(string(runes) + "...")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func cashBookPDF(doc adapter.CashBookDocument) ([]byte, error) {
	pdf := newDocument("Cash Book "+doc.Range.Label(), doc.DocumentHeader)
	title(pdf, "CASH BOOK", fmt.Sprintf("%s | %s", doc.Company, periodLabel(doc.Range)))

	widths := []float64{22, 58, 30, 27, 27, 26}
	aligns := []string{"L", "L", "L", "R", "R", "R"}
	tableHeader(pdf, widths, cashBookHeader, aligns)

	amount := func(d *decimal.Decimal) string {
		if d == nil {
			return "-"
		}
		return FormatNumber(*d)
	}

	for _, row := range doc.Rows {
		cells := []string{
			row.Date.String(),
			fit(pdf, row.Description, widths[1]),
			fit(pdf, row.Category, widths[2]),
			amount(row.Income),
			amount(row.Expense),
			FormatNumber(row.Balance),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], lineHeight, c, "B", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(doc.Rows) == 0 {
		pdf.CellFormat(pageWidth, lineHeight, "No transactions in this period", "B", 1, "C", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(0xDB, 0xEA, 0xFE)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], lineHeight, "Total", "", 0, "L", true, 0, "")
	pdf.CellFormat(widths[3], lineHeight, FormatNumber(doc.TotalIncome), "", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], lineHeight, FormatNumber(doc.TotalExpense), "", 0, "R", true, 0, "")
	pdf.CellFormat(widths[5], lineHeight, FormatNumber(doc.FinalBalance), "", 1, "R", true, 0, "")

	footer(pdf, doc.DocumentHeader)
	return output(pdf)
}

func profitLossPDF(doc adapter.ProfitLossDocument) ([]byte, error) {
	pdf := newDocument("Profit and Loss "+doc.Range.Label(), doc.DocumentHeader)
	title(pdf, "PROFIT AND LOSS", fmt.Sprintf("%s | %s", doc.Company, periodLabel(doc.Range)))

	s := doc.Summary
	section(pdf, "Revenue", s.RevenueBreakdown, s.Revenue, doc.Currency)
	pdf.Ln(4)
	section(pdf, "Costs", s.CostBreakdown, s.Costs, doc.Currency)
	pdf.Ln(6)

	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(0xDB, 0xEA, 0xFE)
	label := "NET PROFIT"
	if s.Profit.IsNegative() {
		label = "NET LOSS"
	}
	pdf.CellFormat(130, 9, label, "", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, FormatMoney(s.Profit, doc.Currency), "", 1, "R", true, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(130, lineHeight, "Profit margin", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, lineHeight, s.MarginPercent.StringFixed(2)+" %", "", 1, "R", false, 0, "")

	footer(pdf, doc.DocumentHeader)
	return output(pdf)
}

func section(pdf *fpdf.Fpdf, name string, rows []ledger.CategoryTotal, total decimal.Decimal, currency string) {
	widths := []float64{100, 30, 60}
	aligns := []string{"L", "R", "R"}
	tableHeader(pdf, widths, []string{name, "Share", "Amount"}, aligns)

	for _, row := range rows {
		pdf.CellFormat(widths[0], lineHeight, fit(pdf, row.Category, widths[0]), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], lineHeight, fmt.Sprintf("%.2f %%", row.Percentage), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], lineHeight, FormatMoney(row.Amount, currency), "B", 1, "R", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(widths[0]+widths[1], lineHeight, "Total "+name, "", 0, "L", false, 0, "")
	pdf.CellFormat(widths[2], lineHeight, FormatMoney(total, currency), "", 1, "R", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
}

func payslipPDF(doc adapter.PayslipDocument) ([]byte, error) {
	pdf := newDocument("Payslip "+doc.EmployeeName, doc.DocumentHeader)
	title(pdf, "EMPLOYEE PAYSLIP", doc.Company)

	pdf.SetFont(fontFamily, "", 10)
	info := [][2]string{
		{"Employee", doc.EmployeeName},
		{"Position", doc.Position},
		{"Salary type", doc.SalaryType},
		{"Period", FormatPeriod(doc.Period)},
		{"Issued", doc.IssuedAt.Format("02 January 2006")},
	}
	for _, kv := range info {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(40, lineHeight, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(150, lineHeight, fit(pdf, ": "+kv[1], 150), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{120, 70}
	tableHeader(pdf, widths, []string{"Description", "Amount (" + currencyLabel(doc.Currency) + ")"}, []string{"L", "R"})
	pdf.SetFont(fontFamily, "", 10)

	line := func(label, value string) {
		pdf.CellFormat(widths[0], 9, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 9, value, "B", 1, "R", false, 0, "")
	}
	line("Base salary", FormatNumber(doc.BaseSalary))
	if doc.Allowance.IsPositive() {
		line("Allowance", FormatNumber(doc.Allowance))
	}
	if doc.Deduction.IsPositive() {
		pdf.SetTextColor(0xDC, 0x26, 0x26)
		line("Deduction", "-"+FormatNumber(doc.Deduction))
		pdf.SetTextColor(0x33, 0x33, 0x33)
	}

	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(0xDB, 0xEA, 0xFE)
	pdf.CellFormat(widths[0], 11, "NET SALARY", "", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], 11, FormatNumber(doc.NetSalary), "", 1, "R", true, 0, "")

	pdf.Ln(20)
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(95, lineHeight, "Received by,", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, lineHeight, "Approved by,", "", 1, "C", false, 0, "")
	pdf.Ln(20)
	pdf.CellFormat(95, lineHeight, fit(pdf, doc.EmployeeName, 95), "T", 0, "C", false, 0, "")
	pdf.CellFormat(95, lineHeight, "( ........................... )", "", 1, "C", false, 0, "")

	footer(pdf, doc.DocumentHeader)
	return output(pdf)
}

func footer(pdf *fpdf.Fpdf, header adapter.DocumentHeader) {
	pdf.Ln(10)
	pdf.SetFont(fontFamily, "I", 8)
	pdf.SetTextColor(0x66, 0x66, 0x66)
	pdf.CellFormat(pageWidth, 5, "Printed on "+header.GeneratedAt.Format("02 January 2006 15:04 MST"), "", 1, "R", false, 0, "")
}

func periodLabel(r ledger.DateRange) string {
	if r.Start == r.End {
		return FormatDate(r.Start)
	}
	return FormatDate(r.Start) + " - " + FormatDate(r.End)
}

func currencyLabel(currency string) string {
	if currency == "" {
		return "IDR"
	}
	return currency
}
