package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/cashbook/backend/internal/domain/error"
)

func TestNetSalary(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		allowance string
		deduction string
		want      string
	}{
		{name: "manager", base: "12000000", allowance: "2000000", deduction: "500000", want: "13500000"},
		{name: "no extras", base: "5000000", allowance: "0", deduction: "0", want: "5000000"},
		{name: "fractional", base: "150000.50", allowance: "0.25", deduction: "0.10", want: "150000.65"},
		{name: "deduction exceeds gross", base: "1000000", allowance: "0", deduction: "1500000", want: "-500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetSalary(
				decimal.RequireFromString(tt.base),
				decimal.RequireFromString(tt.allowance),
				decimal.RequireFromString(tt.deduction),
			)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestParsePayPeriod(t *testing.T) {
	got, err := ParsePayPeriod(" 2024-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", got)

	for _, bad := range []string{"2024-13", "2024-1", "01-2024", "2024-01-01", ""} {
		_, err := ParsePayPeriod(bad)
		require.Error(t, err, bad)
		assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		assert.ErrorIs(t, err, domainerror.ErrInvalidPayPeriod)
	}
}
