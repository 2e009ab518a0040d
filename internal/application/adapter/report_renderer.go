package adapter

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/ledger"
)

// ExportFormat is the file format of an exported report.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// IsValid reports whether f is a supported format.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatPDF, ExportFormatXLSX:
		return true
	}
	return false
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv"
	case ExportFormatPDF:
		return "application/pdf"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Artifact is a rendered, downloadable file.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// DocumentHeader carries the presentation context shared by all documents.
type DocumentHeader struct {
	Company     string
	Currency    string
	GeneratedAt time.Time
}

// CashBookRow is one line of the cash book. Exactly one of Income and Expense is set.
type CashBookRow struct {
	Date        civil.Date
	Description string
	Category    string
	Income      *decimal.Decimal
	Expense     *decimal.Decimal
	Balance     decimal.Decimal
}

// CashBookDocument is the input of a cash book rendering.
type CashBookDocument struct {
	DocumentHeader
	Period       ledger.PeriodKind
	Range        ledger.DateRange
	Rows         []CashBookRow
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	FinalBalance decimal.Decimal
}

// ProfitLossDocument is the input of a profit and loss rendering.
type ProfitLossDocument struct {
	DocumentHeader
	Period  ledger.PeriodKind
	Range   ledger.DateRange
	Summary ledger.ProfitLossSummary
}

// PayslipDocument is the input of a payslip rendering.
type PayslipDocument struct {
	DocumentHeader
	EmployeeName string
	Position     string
	SalaryType   string
	Period       string
	BaseSalary   decimal.Decimal
	Allowance    decimal.Decimal
	Deduction    decimal.Decimal
	NetSalary    decimal.Decimal
	IssuedAt     time.Time
}

// ReportRenderer turns report documents into file bodies.
type ReportRenderer interface {
	// RenderCashBook renders the cash book in the requested format.
	RenderCashBook(ctx context.Context, doc CashBookDocument, format ExportFormat) ([]byte, error)

	// RenderProfitLoss renders the profit and loss statement as PDF.
	RenderProfitLoss(ctx context.Context, doc ProfitLossDocument) ([]byte, error)

	// RenderPayslip renders a payslip as PDF.
	RenderPayslip(ctx context.Context, doc PayslipDocument) ([]byte, error)
}
