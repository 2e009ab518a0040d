package payslip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// DeletePayslipInput represents the input for payslip deletion.
type DeletePayslipInput struct {
	PayslipID uuid.UUID
}

// DeletePayslipOutput represents the output of payslip deletion.
type DeletePayslipOutput struct {
	Success              bool
	DeletedTransactionID *uuid.UUID
}

// DeletePayslipUseCase removes a payslip and its paired payroll transaction.
type DeletePayslipUseCase struct {
	payslipRepo     adapter.PayslipRepository
	transactionRepo adapter.TransactionRepository
	uow             adapter.UnitOfWork
	category        string
}

// NewDeletePayslipUseCase creates a new DeletePayslipUseCase instance.
func NewDeletePayslipUseCase(
	payslipRepo adapter.PayslipRepository,
	transactionRepo adapter.TransactionRepository,
	uow adapter.UnitOfWork,
	category string,
) *DeletePayslipUseCase {
	if category == "" {
		category = entity.PayrollCategory
	}
	return &DeletePayslipUseCase{
		payslipRepo:     payslipRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
		category:        category,
	}
}

// Execute deletes the payslip and its paired transaction atomically. When the
// pairing of a legacy payslip is ambiguous nothing is deleted.
func (uc *DeletePayslipUseCase) Execute(ctx context.Context, input DeletePayslipInput) (*DeletePayslipOutput, error) {
	output := &DeletePayslipOutput{}

	err := uc.uow.Do(ctx, func(ctx context.Context) error {
		found, err := uc.payslipRepo.FindByID(ctx, input.PayslipID)
		if err != nil {
			return notFoundOr(err, "failed to find payslip")
		}

		transactionID, ok, err := ResolvePairedTransaction(ctx, uc.transactionRepo, uc.category, found.Payslip, found.EmployeeName)
		if err != nil {
			return err
		}

		if err := uc.payslipRepo.Delete(ctx, found.Payslip.ID); err != nil {
			return fmt.Errorf("failed to delete payslip: %w", err)
		}

		if !ok {
			return nil
		}
		if err := uc.transactionRepo.Delete(ctx, transactionID); err != nil {
			return fmt.Errorf("failed to delete payroll transaction: %w", err)
		}
		output.DeletedTransactionID = &transactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Payslip deleted",
		"payslipID", input.PayslipID,
		"transactionID", output.DeletedTransactionID,
	)

	output.Success = true
	return output, nil
}
