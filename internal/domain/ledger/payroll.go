package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// NetSalary is base + allowance - deduction. The result is not floored, a
// deduction larger than the gross pay yields a negative net salary.
func NetSalary(base, allowance, deduction decimal.Decimal) decimal.Decimal {
	return base.Add(allowance).Sub(deduction)
}

// ParsePayPeriod validates and normalizes a YYYY-MM period.
func ParsePayPeriod(s string) (string, error) {
	t, err := time.Parse(entity.PeriodLayout, strings.TrimSpace(s))
	if err != nil {
		return "", domainerror.NewPayslipError(
			domainerror.ErrCodeInvalidPayPeriod,
			fmt.Sprintf("period %q must be in YYYY-MM format", s),
			domainerror.ErrInvalidPayPeriod,
		)
	}
	return t.Format(entity.PeriodLayout), nil
}
