package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	payslipRepo     adapter.PayslipRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	payslipRepo adapter.PayslipRepository,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		payslipRepo:     payslipRepo,
	}
}

// Execute performs the transaction deletion. Payroll expenses paired with a
// payslip can only be removed by deleting the payslip.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID); err != nil {
		return nil, notFoundOr(err, "failed to find transaction")
	}

	linked, err := uc.payslipRepo.ExistsByTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payslip link: %w", err)
	}
	if linked {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionLinked,
			"transaction belongs to a payslip, delete the payslip instead",
			domainerror.ErrTransactionLinkedToPayslip,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Debug("Transaction deleted", "transactionID", input.TransactionID)

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
