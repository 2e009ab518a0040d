package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Every field is replaced.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Date          civil.Date
	Category      string
	Description   string
	Amount        *decimal.Decimal
	Type          entity.TransactionType
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
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

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction")
	}

	transaction.Date = f.Date
	transaction.Category = f.Category
	transaction.Description = f.Description
	transaction.Amount = *f.Amount
	transaction.Type = f.Type
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// notFoundOr maps a repository miss to the coded not-found error and wraps anything else.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
