package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// MonthTotals is the income and expense of one calendar month.
type MonthTotals struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// MonthlyTrend groups entries by month, oldest month first.
func MonthlyTrend(entries []Entry) []MonthTotals {
	byMonth := make(map[string]*MonthTotals)
	for _, e := range entries {
		key := fmt.Sprintf("%04d-%02d", e.Date.Year, int(e.Date.Month))
		m, ok := byMonth[key]
		if !ok {
			m = &MonthTotals{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = m
		}
		switch e.Kind {
		case entity.TransactionTypeIncome:
			m.Income = m.Income.Add(e.Amount)
		case entity.TransactionTypeExpense:
			m.Expense = m.Expense.Add(e.Amount)
		}
	}

	trend := make([]MonthTotals, 0, len(byMonth))
	for _, m := range byMonth {
		m.Net = m.Income.Sub(m.Expense)
		trend = append(trend, *m)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}
