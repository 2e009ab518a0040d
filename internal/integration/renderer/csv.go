package renderer

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
)

var cashBookHeader = []string{"Date", "Description", "Category", "Income", "Expense", "Balance"}

func cashBookCSV(doc adapter.CashBookDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(doc.Rows)+2)
	records = append(records, cashBookHeader)
	for _, row := range doc.Rows {
		records = append(records, []string{
			row.Date.String(),
			row.Description,
			row.Category,
			optionalAmount(row.Income),
			optionalAmount(row.Expense),
			row.Balance.StringFixed(2),
		})
	}
	records = append(records, []string{
		"", "Total", "",
		doc.TotalIncome.StringFixed(2),
		doc.TotalExpense.StringFixed(2),
		doc.FinalBalance.StringFixed(2),
	})

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
