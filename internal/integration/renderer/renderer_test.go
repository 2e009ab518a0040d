package renderer

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func header() adapter.DocumentHeader {
	return adapter.DocumentHeader{
		Company:     "CV Maju Jaya",
		Currency:    "IDR",
		GeneratedAt: time.Date(2024, 1, 31, 17, 0, 0, 0, time.UTC),
	}
}

func cashBook() adapter.CashBookDocument {
	return adapter.CashBookDocument{
		DocumentHeader: header(),
		Period:         ledger.PeriodMonth,
		Range: ledger.DateRange{
			Start: civil.Date{Year: 2024, Month: time.January, Day: 1},
			End:   civil.Date{Year: 2024, Month: time.January, Day: 31},
		},
		Rows: []adapter.CashBookRow{
			{Date: civil.Date{Year: 2024, Month: time.January, Day: 15}, Description: "Opening sale", Category: "Sales", Income: ptr("5000000"), Balance: dec("5000000")},
			{Date: civil.Date{Year: 2024, Month: time.January, Day: 16}, Description: "Office rent, January", Category: "Rent", Expense: ptr("2000000"), Balance: dec("3000000")},
		},
		TotalIncome:  dec("5000000"),
		TotalExpense: dec("2000000"),
		FinalBalance: dec("3000000"),
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "Rp 0"},
		{"999", "Rp 999"},
		{"15000000", "Rp 15.000.000"},
		{"-2500000", "Rp -2.500.000"},
		{"1234.5", "Rp 1.234,50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(dec(tt.in), "IDR"), tt.in)
	}
	assert.Equal(t, "USD 1.000", FormatMoney(dec("1000"), "usd"))
}

func TestFormatDates(t *testing.T) {
	assert.Equal(t, "05 March 2024", FormatDate(civil.Date{Year: 2024, Month: time.March, Day: 5}))
	assert.Equal(t, "March 2024", FormatPeriod("2024-03"))
	assert.Equal(t, "garbage", FormatPeriod("garbage"))
}

func TestRenderCashBookCSV(t *testing.T) {
	body, err := NewReportRenderer().RenderCashBook(context.Background(), cashBook(), adapter.ExportFormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, cashBookHeader, records[0])
	assert.Equal(t, []string{"2024-01-16", "Office rent, January", "Rent", "", "2000000.00", "3000000.00"}, records[2])
	assert.Equal(t, "3000000.00", records[3][5])
}

func TestRenderCashBookXLSX(t *testing.T) {
	body, err := NewReportRenderer().RenderCashBook(context.Background(), cashBook(), adapter.ExportFormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	company, err := f.GetCellValue(cashBookSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "CV Maju Jaya", company)

	desc, err := f.GetCellValue(cashBookSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Opening sale", desc)

	balance, err := f.GetCellValue(cashBookSheet, "F6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "3000000", balance)

	total, err := f.GetCellValue(cashBookSheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestRenderPDFs(t *testing.T) {
	r := NewReportRenderer()
	ctx := context.Background()

	cb, err := r.RenderCashBook(ctx, cashBook(), adapter.ExportFormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(cb, []byte("%PDF-")))

	pl, err := r.RenderProfitLoss(ctx, adapter.ProfitLossDocument{
		DocumentHeader: header(),
		Period:         ledger.PeriodMonth,
		Range:          cashBook().Range,
		Summary: ledger.ProfitLossSummary{
			Revenue:          dec("5000000"),
			Costs:            dec("2000000"),
			Profit:           dec("3000000"),
			MarginPercent:    dec("60"),
			RevenueBreakdown: []ledger.CategoryTotal{{Category: "Sales", Amount: dec("5000000"), Count: 1, Percentage: 100}},
			CostBreakdown:    []ledger.CategoryTotal{{Category: "Rent", Amount: dec("2000000"), Count: 1, Percentage: 100}},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pl, []byte("%PDF-")))

	slip, err := r.RenderPayslip(ctx, adapter.PayslipDocument{
		DocumentHeader: header(),
		EmployeeName:   "Ahmad Wijaya",
		Position:       "Manager",
		SalaryType:     "fixed",
		Period:         "2024-03",
		BaseSalary:     dec("12000000"),
		Allowance:      dec("2000000"),
		Deduction:      dec("500000"),
		NetSalary:      dec("13500000"),
		IssuedAt:       time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(slip, []byte("%PDF-")))
}

func TestFit(t *testing.T) {
	pdf := newDocument("fit", header())
	pdf.SetFont(fontFamily, "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	tests := []struct {
		name      string
		in        string
		width     float64
		want      string
		truncated bool
	}{
		{"short ascii is kept", "Sales", 40, "Sales", false},
		{"short accented text is translated", "Café", 40, "Caf\xe9", false},
		{"long accented text is cut on characters", strings.Repeat("Pembayaran kafé ", 10), 40, "", true},
		{"accent at the cut point", strings.Repeat("é", 200), 30, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := fit(pdf, tt.in, tt.width)

			assert.NotContains(t, out, "\uFFFD")
			assert.LessOrEqual(t, pdf.GetStringWidth(out), tt.width-2)
			if !tt.truncated {
				assert.Equal(t, tt.want, out)
				return
			}

			runes := []rune(tt.in)
			prefix := -1
			for i := len(runes); i >= 0; i-- {
				if tr(string(runes[:i])+"...") == out {
					prefix = i
					break
				}
			}
			assert.Positive(t, prefix, "output is not a translated prefix of the input: %q", out)
		})
	}
}

func TestRenderRejectsUnknownFormatAndCancelledContext(t *testing.T) {
	r := NewReportRenderer()

	_, err := r.RenderCashBook(context.Background(), cashBook(), adapter.ExportFormat("docx"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RenderPayslip(ctx, adapter.PayslipDocument{})
	assert.ErrorIs(t, err, context.Canceled)
}
