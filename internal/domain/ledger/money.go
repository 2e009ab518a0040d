package ledger

import "github.com/shopspring/decimal"

const (
	// MoneyScale is the number of fractional digits an amount may carry.
	MoneyScale = 2
	// MoneyIntegerDigits is the number of integer digits a stored amount may carry.
	MoneyIntegerDigits = 13
)

// moneyLimit is the smallest magnitude that no longer fits decimal(15,2).
var moneyLimit = decimal.New(1, MoneyIntegerDigits)

// IsMoney reports whether d is representable as a stored amount: at most
// two fractional digits and an absolute value below 10^13. Trailing zeros
// ("10.500") are accepted.
func IsMoney(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(MoneyScale)) {
		return false
	}
	return d.Abs().LessThan(moneyLimit)
}
