package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
)

// GetTransactionUseCase handles fetching a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction with the given ID.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*TransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction")
	}
	return toTransactionOutput(transaction), nil
}
