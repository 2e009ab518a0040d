package report

import (
	"context"
	"fmt"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// RecentTransactionsLimit is the number of transactions shown on the dashboard.
const RecentTransactionsLimit = 5

// GetDashboardOutput represents the all-time overview of the cash book.
type GetDashboardOutput struct {
	Totals             ledger.Totals
	Trend              []ledger.MonthTotals
	RecentTransactions []*entity.Transaction
}

// GetDashboardUseCase computes all-time totals, the monthly trend and the most
// recent transactions.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(transactionRepo adapter.TransactionRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{transactionRepo: transactionRepo}
}

// Execute builds the dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx, adapter.TransactionFilter{NewestFirst: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	entries := ledger.FromTransactions(transactions)

	recent := transactions
	if len(recent) > RecentTransactionsLimit {
		recent = recent[:RecentTransactionsLimit]
	}

	return &GetDashboardOutput{
		Totals:             ledger.Summarize(entries),
		Trend:              ledger.MonthlyTrend(entries),
		RecentTransactions: recent,
	}, nil
}
