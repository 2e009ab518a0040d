package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashbook/backend/internal/domain/entity"
)

func TestMonthlyTrend(t *testing.T) {
	entries := []Entry{
		entry(t, "2024-03-02", entity.TransactionTypeIncome, "300", "Sales"),
		entry(t, "2024-01-10", entity.TransactionTypeIncome, "100", "Sales"),
		entry(t, "2024-01-20", entity.TransactionTypeExpense, "40", "Rent"),
		entry(t, "2023-12-31", entity.TransactionTypeExpense, "5", "Rent"),
	}

	got := MonthlyTrend(entries)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-03"}, []string{got[0].Month, got[1].Month, got[2].Month})
	assertDecimal(t, "100", got[1].Income)
	assertDecimal(t, "40", got[1].Expense)
	assertDecimal(t, "60", got[1].Net)
	assertDecimal(t, "-5", got[0].Net)
}

func TestMonthlyTrendEmpty(t *testing.T) {
	assert.Empty(t, MonthlyTrend(nil))
}
