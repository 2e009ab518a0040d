package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsMoney(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"10.5", true},
		{"10.50", true},
		{"10.500", true},
		{"-250000.25", true},
		{"9999999999999.99", true},
		{"0.005", false},
		{"10.001", false},
		{"10000000000000", false},
		{"1e14", false},
		{"-1e13", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMoney(decimal.RequireFromString(tt.in)))
		})
	}
}
