package ledger

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// Entry is the engine's view of a transaction.
type Entry struct {
	ID          uuid.UUID
	Date        civil.Date
	Category    string
	Description string
	Amount      decimal.Decimal
	Kind        entity.TransactionType
	CreatedAt   time.Time
}

// Signed returns the amount with the sign implied by the entry kind.
func (e Entry) Signed() decimal.Decimal {
	if e.Kind == entity.TransactionTypeExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// FromTransaction converts a stored transaction into an entry.
func FromTransaction(t *entity.Transaction) Entry {
	return Entry{
		ID:          t.ID,
		Date:        t.Date,
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount,
		Kind:        t.Type,
		CreatedAt:   t.CreatedAt,
	}
}

// FromTransactions converts transactions into entries keeping their order.
func FromTransactions(txns []*entity.Transaction) []Entry {
	entries := make([]Entry, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, FromTransaction(t))
	}
	return entries
}

// BalanceRow pairs an entry with the cumulative balance after it.
type BalanceRow struct {
	Entry
	Balance decimal.Decimal
}

// Totals holds the flat sums of a set of entries.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// FilterByRange returns the entries dated within r. The input is not modified.
func FilterByRange(entries []Entry, r DateRange) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// SortChronologically returns a copy of entries ordered by date ascending.
// Entries sharing a date keep their input order.
func SortChronologically(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// WithRunningBalance sorts entries chronologically and attaches the running
// balance, starting from zero.
func WithRunningBalance(entries []Entry) []BalanceRow {
	sorted := SortChronologically(entries)
	rows := make([]BalanceRow, 0, len(sorted))
	balance := decimal.Zero
	for _, e := range sorted {
		balance = balance.Add(e.Signed())
		rows = append(rows, BalanceRow{Entry: e, Balance: balance})
	}
	return rows
}

// TotalIncome sums the income entries.
func TotalIncome(entries []Entry) decimal.Decimal {
	return sumKind(entries, entity.TransactionTypeIncome)
}

// TotalExpense sums the expense entries.
func TotalExpense(entries []Entry) decimal.Decimal {
	return sumKind(entries, entity.TransactionTypeExpense)
}

// NetBalance is total income minus total expense.
func NetBalance(entries []Entry) decimal.Decimal {
	return TotalIncome(entries).Sub(TotalExpense(entries))
}

// Summarize computes income, expense and net in one pass.
func Summarize(entries []Entry) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero, Count: len(entries)}
	for _, e := range entries {
		switch e.Kind {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(e.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(e.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}

func sumKind(entries []Entry, kind entity.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Kind == kind {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}
