package report

import (
	"context"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// GetProfitLossOutput represents the profit and loss statement of one period.
type GetProfitLossOutput struct {
	Period    ledger.PeriodKind
	Reference string
	Range     ledger.DateRange
	Summary   ledger.ProfitLossSummary
}

// GetProfitLossUseCase computes revenue, costs, profit and margin of a period.
type GetProfitLossUseCase struct {
	periods periodResolver
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	settings Settings,
) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		periods: periodResolver{transactionRepo: transactionRepo, clock: clock, settings: settings},
	}
}

// Execute returns the profit and loss statement of the requested period.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, input PeriodInput) (*GetProfitLossOutput, error) {
	period, err := uc.periods.resolve(input)
	if err != nil {
		return nil, err
	}

	entries, err := uc.periods.entries(ctx, period.Range)
	if err != nil {
		return nil, err
	}

	return &GetProfitLossOutput{
		Period:    period.Kind,
		Reference: period.Reference.String(),
		Range:     period.Range,
		Summary:   ledger.ProfitLoss(entries),
	}, nil
}
