package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestCLI(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(dir, "cashbook.db"))
	t.Setenv("BCRYPT_COST", "4")

	execute(t, "migrate", "--log-level", "error")

	out := execute(t, "seed", "--log-level", "error")
	assert.Equal(t, "Seeded 5 employees, 10 transactions and 3 payslips.\n", out)

	out = execute(t, "seed", "--log-level", "error")
	assert.Contains(t, out, "nothing seeded")

	out = execute(t, "report", "cash-book", "--period", "year", "--log-level", "error")
	assert.Contains(t, out, "Cash book (year)")
	assert.Contains(t, out, "Total")

	out = execute(t, "report", "profit-loss", "--period", "year", "--log-level", "error")
	assert.Contains(t, out, "Total revenue")
	assert.Contains(t, out, "Margin")

	csvPath := filepath.Join(dir, "book.csv")
	execute(t, "report", "cash-book", "--format", "csv", "-o", csvPath, "--log-level", "error")
	body, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("Date,Description,Category,Income,Expense,Balance")))
}

func TestCLI_InvalidPeriod(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "cashbook.db"))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"report", "cash-book", "--period", "decade", "--log-level", "error"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown period "decade"`)
}
