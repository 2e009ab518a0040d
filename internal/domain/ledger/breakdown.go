package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the subtotal of one category within a set of entries.
type CategoryTotal struct {
	Category   string
	Amount     decimal.Decimal
	Count      int
	Percentage float64 // share of the kind's total, 0 when the total is zero
}

// Breakdown groups entries of the given kind by exact category label and
// orders the groups by amount descending. Equal amounts keep the order in
// which their category was first seen.
func Breakdown(entries []Entry, kind entity.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	groups := make([]CategoryTotal, 0)
	total := decimal.Zero

	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		total = total.Add(e.Amount)
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		groups[i].Amount = groups[i].Amount.Add(e.Amount)
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.GreaterThan(groups[j].Amount)
	})

	if total.IsPositive() {
		for i := range groups {
			groups[i].Percentage = groups[i].Amount.Mul(hundred).Div(total).Round(2).InexactFloat64()
		}
	}

	return groups
}
