package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// ExportCashBookInput represents the input for a cash book export.
type ExportCashBookInput struct {
	PeriodInput
	Format string
}

// ExportCashBookUseCase renders the cash book of a period as a downloadable file.
type ExportCashBookUseCase struct {
	periods  periodResolver
	renderer adapter.ReportRenderer
}

// NewExportCashBookUseCase creates a new ExportCashBookUseCase instance.
func NewExportCashBookUseCase(
	transactionRepo adapter.TransactionRepository,
	renderer adapter.ReportRenderer,
	clock adapter.Clock,
	settings Settings,
) *ExportCashBookUseCase {
	return &ExportCashBookUseCase{
		periods:  periodResolver{transactionRepo: transactionRepo, clock: clock, settings: settings},
		renderer: renderer,
	}
}

// Execute renders the cash book in the requested format.
func (uc *ExportCashBookUseCase) Execute(ctx context.Context, input ExportCashBookInput) (*adapter.Artifact, error) {
	format := adapter.ExportFormat(strings.ToLower(strings.TrimSpace(input.Format)))
	if format == "" {
		format = adapter.ExportFormatPDF
	}
	if !format.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			fmt.Sprintf("unsupported format %q", input.Format),
			domainerror.ErrInvalidExportFormat,
		)
	}

	period, err := uc.periods.resolve(input.PeriodInput)
	if err != nil {
		return nil, err
	}

	entries, err := uc.periods.entries(ctx, period.Range)
	if err != nil {
		return nil, err
	}

	book := buildCashBook(period, entries)
	doc := adapter.CashBookDocument{
		DocumentHeader: uc.periods.header(),
		Period:         book.Period,
		Range:          book.Range,
		Rows:           make([]adapter.CashBookRow, 0, len(book.Rows)),
		TotalIncome:    book.Totals.Income,
		TotalExpense:   book.Totals.Expense,
		FinalBalance:   book.FinalBalance,
	}
	for _, row := range book.Rows {
		amount := row.Amount
		line := adapter.CashBookRow{
			Date:        row.Date,
			Description: row.Description,
			Category:    row.Category,
			Balance:     row.Balance,
		}
		if row.Kind == entity.TransactionTypeIncome {
			line.Income = &amount
		} else {
			line.Expense = &amount
		}
		doc.Rows = append(doc.Rows, line)
	}

	body, err := uc.renderer.RenderCashBook(ctx, doc, format)
	if err != nil {
		return nil, renderError(err)
	}

	return &adapter.Artifact{
		Filename:    fmt.Sprintf("cash-book-%s-%s.%s", book.Range.Start, book.Range.End, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func renderError(err error) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportRenderFailed,
		"failed to render report",
		fmt.Errorf("%w: %w", domainerror.ErrRenderFailed, err),
	)
}
