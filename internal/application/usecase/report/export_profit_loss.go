package report

import (
	"context"
	"fmt"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// ExportProfitLossUseCase renders the profit and loss statement of a period as PDF.
type ExportProfitLossUseCase struct {
	periods  periodResolver
	renderer adapter.ReportRenderer
}

// NewExportProfitLossUseCase creates a new ExportProfitLossUseCase instance.
func NewExportProfitLossUseCase(
	transactionRepo adapter.TransactionRepository,
	renderer adapter.ReportRenderer,
	clock adapter.Clock,
	settings Settings,
) *ExportProfitLossUseCase {
	return &ExportProfitLossUseCase{
		periods:  periodResolver{transactionRepo: transactionRepo, clock: clock, settings: settings},
		renderer: renderer,
	}
}

// Execute renders the statement.
func (uc *ExportProfitLossUseCase) Execute(ctx context.Context, input PeriodInput) (*adapter.Artifact, error) {
	period, err := uc.periods.resolve(input)
	if err != nil {
		return nil, err
	}

	entries, err := uc.periods.entries(ctx, period.Range)
	if err != nil {
		return nil, err
	}

	doc := adapter.ProfitLossDocument{
		DocumentHeader: uc.periods.header(),
		Period:         period.Kind,
		Range:          period.Range,
		Summary:        ledger.ProfitLoss(entries),
	}

	body, err := uc.renderer.RenderProfitLoss(ctx, doc)
	if err != nil {
		return nil, renderError(err)
	}

	return &adapter.Artifact{
		Filename:    fmt.Sprintf("profit-loss-%s-%s.pdf", period.Kind, period.Reference),
		ContentType: adapter.ExportFormatPDF.ContentType(),
		Body:        body,
	}, nil
}
