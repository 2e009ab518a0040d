package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// GetCashBookOutput represents the cash book of one period.
type GetCashBookOutput struct {
	Period       ledger.PeriodKind
	Range        ledger.DateRange
	Rows         []ledger.BalanceRow
	Totals       ledger.Totals
	FinalBalance decimal.Decimal
}

// GetCashBookUseCase computes the running-balance ledger of a period.
type GetCashBookUseCase struct {
	periods periodResolver
}

// NewGetCashBookUseCase creates a new GetCashBookUseCase instance.
func NewGetCashBookUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	settings Settings,
) *GetCashBookUseCase {
	return &GetCashBookUseCase{
		periods: periodResolver{transactionRepo: transactionRepo, clock: clock, settings: settings},
	}
}

// Execute resolves the period, filters the transactions into it and returns
// them in date order with their running balance.
func (uc *GetCashBookUseCase) Execute(ctx context.Context, input PeriodInput) (*GetCashBookOutput, error) {
	period, err := uc.periods.resolve(input)
	if err != nil {
		return nil, err
	}

	entries, err := uc.periods.entries(ctx, period.Range)
	if err != nil {
		return nil, err
	}

	return buildCashBook(period, entries), nil
}

func buildCashBook(period resolvedPeriod, entries []ledger.Entry) *GetCashBookOutput {
	rows := ledger.WithRunningBalance(entries)
	totals := ledger.Summarize(entries)

	final := decimal.Zero
	if len(rows) > 0 {
		final = rows[len(rows)-1].Balance
	}

	return &GetCashBookOutput{
		Period:       period.Kind,
		Range:        period.Range,
		Rows:         rows,
		Totals:       totals,
		FinalBalance: final,
	}
}
