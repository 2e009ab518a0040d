package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        civil.Date
	Category    string
	Description string
	Amount      *decimal.Decimal
	Type        entity.TransactionType
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	f := fields{
		Date:        input.Date,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(f.Date, f.Category, f.Description, *f.Amount, f.Type)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Debug("Transaction recorded",
		"transactionID", transaction.ID,
		"type", transaction.Type,
		"amount", transaction.Amount.String(),
	)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
