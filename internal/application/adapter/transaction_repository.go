// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	StartDate *civil.Date
	EndDate   *civil.Date
	Type      *entity.TransactionType
	Category  string // Exact category label
	Search    string // Case-insensitive description match
	// NewestFirst orders by date then creation time, both descending.
	// Otherwise rows come back in creation order.
	NewestFirst bool
	Limit       int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves the transactions matching the filter.
	FindAll(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// GetTotals calculates totals for transactions based on filter criteria.
	GetTotals(ctx context.Context, filter TransactionFilter) (*entity.TransactionTotals, error)

	// Update replaces an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPayrollCandidates returns the transactions of the given category whose
	// description mentions both the employee name and the period and whose
	// amount equals amount. Used to pair legacy payslips with their expense.
	FindPayrollCandidates(
		ctx context.Context,
		category string,
		employeeName string,
		period string,
		amount decimal.Decimal,
	) ([]*entity.Transaction, error)
}
