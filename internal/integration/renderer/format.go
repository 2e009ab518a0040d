package renderer

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// FormatMoney renders an amount with dot thousand separators, the way the
// business prints rupiah: "Rp 15.000.000". Cents are shown only when present.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return currencyPrefix(currency) + FormatNumber(amount)
}

// FormatNumber renders an amount without a currency symbol.
func FormatNumber(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	var whole, frac string
	if amount.Equal(amount.Truncate(0)) {
		whole = amount.Truncate(0).String()
	} else {
		fixed := amount.StringFixed(2)
		whole, frac, _ = strings.Cut(fixed, ".")
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

func currencyPrefix(currency string) string {
	switch strings.ToUpper(strings.TrimSpace(currency)) {
	case "", "IDR":
		return "Rp "
	default:
		return strings.ToUpper(currency) + " "
	}
}

// FormatDate renders a date as "15 January 2024".
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format("02 January 2006")
}

// FormatPeriod renders a payslip period "2024-03" as "March 2024".
func FormatPeriod(period string) string {
	t, err := time.Parse(entity.PeriodLayout, period)
	if err != nil {
		return period
	}
	return t.Format("January 2006")
}
