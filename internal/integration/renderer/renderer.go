// Package renderer turns report documents into CSV, XLSX and PDF files.
package renderer

import (
	"context"
	"fmt"

	"github.com/cashbook/backend/internal/application/adapter"
)

// reportRenderer implements the adapter.ReportRenderer interface.
type reportRenderer struct{}

// NewReportRenderer creates a new report renderer instance.
func NewReportRenderer() adapter.ReportRenderer {
	return &reportRenderer{}
}

// RenderCashBook renders the cash book in the requested format.
func (r *reportRenderer) RenderCashBook(ctx context.Context, doc adapter.CashBookDocument, format adapter.ExportFormat) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case adapter.ExportFormatCSV:
		return cashBookCSV(doc)
	case adapter.ExportFormatXLSX:
		return cashBookXLSX(doc)
	case adapter.ExportFormatPDF:
		return cashBookPDF(doc)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// RenderProfitLoss renders the profit and loss statement as PDF.
func (r *reportRenderer) RenderProfitLoss(ctx context.Context, doc adapter.ProfitLossDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return profitLossPDF(doc)
}

// RenderPayslip renders a payslip as PDF.
func (r *reportRenderer) RenderPayslip(ctx context.Context, doc adapter.PayslipDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return payslipPDF(doc)
}
