package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// ProfitLossSummary is the profit and loss statement of a set of entries.
type ProfitLossSummary struct {
	Revenue          decimal.Decimal
	Costs            decimal.Decimal
	Profit           decimal.Decimal
	Margin           decimal.Decimal // unrounded percentage
	MarginPercent    decimal.Decimal // Margin rounded to 2 places
	RevenueBreakdown []CategoryTotal
	CostBreakdown    []CategoryTotal
}

// ProfitLoss derives revenue, costs, profit and margin. The margin is zero
// unless revenue is strictly positive.
func ProfitLoss(entries []Entry) ProfitLossSummary {
	totals := Summarize(entries)

	margin := decimal.Zero
	if totals.Income.IsPositive() {
		margin = totals.Net.Div(totals.Income).Mul(hundred)
	}

	return ProfitLossSummary{
		Revenue:          totals.Income,
		Costs:            totals.Expense,
		Profit:           totals.Net,
		Margin:           margin,
		MarginPercent:    margin.Round(2),
		RevenueBreakdown: Breakdown(entries, entity.TransactionTypeIncome),
		CostBreakdown:    Breakdown(entries, entity.TransactionTypeExpense),
	}
}
