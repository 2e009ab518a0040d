package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
	"github.com/cashbook/backend/internal/integration/persistence"
	"github.com/cashbook/backend/internal/integration/persistence/persistencetest"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var today = fixedClock{now: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)}

var settings = report.Settings{WeekStart: time.Monday, Company: "CV Maju Jaya", Currency: "IDR"}

type recordingRenderer struct {
	cashBook   adapter.CashBookDocument
	format     adapter.ExportFormat
	profitLoss adapter.ProfitLossDocument
	err        error
}

func (r *recordingRenderer) RenderCashBook(_ context.Context, doc adapter.CashBookDocument, format adapter.ExportFormat) ([]byte, error) {
	r.cashBook, r.format = doc, format
	return []byte("cash-book"), r.err
}

func (r *recordingRenderer) RenderProfitLoss(_ context.Context, doc adapter.ProfitLossDocument) ([]byte, error) {
	r.profitLoss = doc
	return []byte("profit-loss"), r.err
}

func (r *recordingRenderer) RenderPayslip(context.Context, adapter.PayslipDocument) ([]byte, error) {
	return nil, errors.New("not used")
}

func seed(t *testing.T) adapter.TransactionRepository {
	t.Helper()
	repo := persistence.NewTransactionRepository(persistencetest.NewSQLiteDB(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []struct {
		day, category, description, amount string
		kind                                entity.TransactionType
	}{
		{"2024-01-17", "Sales", "Product sale", "3500000", entity.TransactionTypeIncome},
		{"2024-01-15", "Sales", "Opening sale", "5000000", entity.TransactionTypeIncome},
		{"2024-01-16", "Rent", "Office rent", "2000000", entity.TransactionTypeExpense},
		{"2023-12-30", "Utilities", "Electricity", "400000", entity.TransactionTypeExpense},
	}
	for i, r := range rows {
		d, err := civil.ParseDate(r.day)
		require.NoError(t, err)
		txn := entity.NewTransaction(d, r.category, r.description, decimal.RequireFromString(r.amount), r.kind)
		txn.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(context.Background(), txn))
	}
	return repo
}

func TestGetCashBookUseCase(t *testing.T) {
	repo := seed(t)
	uc := report.NewGetCashBookUseCase(repo, today, settings)
	ctx := context.Background()

	out, err := uc.Execute(ctx, report.PeriodInput{Period: "monthly"})
	require.NoError(t, err)

	assert.Equal(t, ledger.PeriodMonth, out.Period)
	assert.Equal(t, "2024-01-01", out.Range.Start.String())
	assert.Equal(t, "2024-01-31", out.Range.End.String())
	require.Len(t, out.Rows, 3)

	balances := []string{"5000000", "3000000", "6500000"}
	for i, want := range balances {
		assert.True(t, decimal.RequireFromString(want).Equal(out.Rows[i].Balance), "row %d", i)
	}
	assert.True(t, decimal.RequireFromString("8500000").Equal(out.Totals.Income))
	assert.True(t, decimal.RequireFromString("6500000").Equal(out.FinalBalance))

	t.Run("week uses the configured start day", func(t *testing.T) {
		out, err := uc.Execute(ctx, report.PeriodInput{Period: "week", Date: "2024-01-17"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", out.Range.Start.String())
		assert.Equal(t, "2024-01-21", out.Range.End.String())
		assert.Len(t, out.Rows, 3)
	})

	t.Run("empty period", func(t *testing.T) {
		out, err := uc.Execute(ctx, report.PeriodInput{Period: "day", Date: "2024-01-01"})
		require.NoError(t, err)
		assert.Empty(t, out.Rows)
		assert.True(t, out.FinalBalance.IsZero())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := uc.Execute(ctx, report.PeriodInput{Period: "quarter"})
		assert.Equal(t, "RPT-010001", domainerror.CodeOf(err))

		_, err = uc.Execute(ctx, report.PeriodInput{Period: "month", Date: "2024-02-30"})
		assert.Equal(t, "RPT-010002", domainerror.CodeOf(err))
	})
}

func TestGetProfitLossUseCase(t *testing.T) {
	uc := report.NewGetProfitLossUseCase(seed(t), today, settings)

	out, err := uc.Execute(context.Background(), report.PeriodInput{Period: "month", Date: "2024-01-05"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", out.Reference)
	assert.True(t, decimal.RequireFromString("8500000").Equal(out.Summary.Revenue))
	assert.True(t, decimal.RequireFromString("2000000").Equal(out.Summary.Costs))
	assert.True(t, decimal.RequireFromString("6500000").Equal(out.Summary.Profit))
	assert.True(t, decimal.RequireFromString("76.47").Equal(out.Summary.MarginPercent))

	yearly, err := uc.Execute(context.Background(), report.PeriodInput{Period: "year", Date: "2023-06-01"})
	require.NoError(t, err)
	assert.True(t, yearly.Summary.Revenue.IsZero())
	assert.True(t, decimal.RequireFromString("-400000").Equal(yearly.Summary.Profit))
	assert.True(t, yearly.Summary.MarginPercent.IsZero())
}

func TestGetDashboardUseCase(t *testing.T) {
	out, err := report.NewGetDashboardUseCase(seed(t)).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, out.Totals.Count)
	assert.True(t, decimal.RequireFromString("6100000").Equal(out.Totals.Net))
	require.Len(t, out.Trend, 2)
	assert.Equal(t, "2023-12", out.Trend[0].Month)
	assert.Equal(t, "2024-01", out.Trend[1].Month)
	require.Len(t, out.RecentTransactions, 4)
	assert.Equal(t, "Product sale", out.RecentTransactions[0].Description)
}

func TestExportCashBookUseCase(t *testing.T) {
	renderer := &recordingRenderer{}
	uc := report.NewExportCashBookUseCase(seed(t), renderer, today, settings)
	ctx := context.Background()

	artifact, err := uc.Execute(ctx, report.ExportCashBookInput{PeriodInput: report.PeriodInput{Period: "month"}})
	require.NoError(t, err)
	assert.Equal(t, "cash-book-2024-01-01-2024-01-31.pdf", artifact.Filename)
	assert.Equal(t, adapter.ExportFormatPDF, renderer.format)
	assert.Equal(t, "CV Maju Jaya", renderer.cashBook.Company)

	rows := renderer.cashBook.Rows
	require.Len(t, rows, 3)
	require.NotNil(t, rows[0].Income)
	assert.Nil(t, rows[0].Expense)
	require.NotNil(t, rows[1].Expense)
	assert.True(t, decimal.RequireFromString("2000000").Equal(*rows[1].Expense))

	artifact, err = uc.Execute(ctx, report.ExportCashBookInput{PeriodInput: report.PeriodInput{Period: "month"}, Format: "XLSX"})
	require.NoError(t, err)
	assert.Equal(t, "cash-book-2024-01-01-2024-01-31.xlsx", artifact.Filename)
	assert.Equal(t, adapter.ExportFormatXLSX.ContentType(), artifact.ContentType)

	_, err = uc.Execute(ctx, report.ExportCashBookInput{PeriodInput: report.PeriodInput{Period: "month"}, Format: "docx"})
	assert.Equal(t, "RPT-010003", domainerror.CodeOf(err))

	renderer.err = errors.New("boom")
	_, err = uc.Execute(ctx, report.ExportCashBookInput{PeriodInput: report.PeriodInput{Period: "month"}, Format: "csv"})
	assert.ErrorIs(t, err, domainerror.ErrRenderFailed)
	assert.Equal(t, domainerror.KindStorageFailure, domainerror.KindOf(err))
}

func TestExportProfitLossUseCase(t *testing.T) {
	renderer := &recordingRenderer{}
	uc := report.NewExportProfitLossUseCase(seed(t), renderer, today, settings)

	artifact, err := uc.Execute(context.Background(), report.PeriodInput{Period: "yearly", Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "profit-loss-year-2024-03-01.pdf", artifact.Filename)
	assert.Equal(t, "2024-01-01 to 2024-12-31", renderer.profitLoss.Range.Label())
}
