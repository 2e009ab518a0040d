package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/payslip"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// DeleteEmployeeInput represents the input for employee deletion.
type DeleteEmployeeInput struct {
	EmployeeID uuid.UUID
}

// DeleteEmployeeOutput represents the output of employee deletion.
type DeleteEmployeeOutput struct {
	Success             bool
	DeletedPayslips     int
	DeletedTransactions int
}

// DeleteEmployeeUseCase handles employee deletion according to the configured policy.
type DeleteEmployeeUseCase struct {
	employeeRepo    adapter.EmployeeRepository
	payslipRepo     adapter.PayslipRepository
	transactionRepo adapter.TransactionRepository
	uow             adapter.UnitOfWork
	policy          entity.EmployeeDeletePolicy
	category        string
}

// NewDeleteEmployeeUseCase creates a new DeleteEmployeeUseCase instance.
// An unknown policy falls back to restrict.
func NewDeleteEmployeeUseCase(
	employeeRepo adapter.EmployeeRepository,
	payslipRepo adapter.PayslipRepository,
	transactionRepo adapter.TransactionRepository,
	uow adapter.UnitOfWork,
	policy entity.EmployeeDeletePolicy,
	category string,
) *DeleteEmployeeUseCase {
	if !policy.IsValid() {
		policy = entity.EmployeeDeleteRestrict
	}
	if category == "" {
		category = entity.PayrollCategory
	}
	return &DeleteEmployeeUseCase{
		employeeRepo:    employeeRepo,
		payslipRepo:     payslipRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
		policy:          policy,
		category:        category,
	}
}

// Execute performs the employee deletion.
//
// With the restrict policy an employee that still has payslips is kept and a
// validation error is returned. With the cascade policy the payslips, their
// paired payroll transactions and the employee are removed together. An
// ambiguous legacy pairing aborts the whole deletion.
func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, input DeleteEmployeeInput) (*DeleteEmployeeOutput, error) {
	output := &DeleteEmployeeOutput{}

	err := uc.uow.Do(ctx, func(ctx context.Context) error {
		employee, err := uc.employeeRepo.FindByID(ctx, input.EmployeeID)
		if err != nil {
			return notFoundOr(err, "failed to find employee")
		}

		payslips, err := uc.payslipRepo.FindByEmployee(ctx, input.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to find payslips: %w", err)
		}

		if len(payslips) > 0 && uc.policy == entity.EmployeeDeleteRestrict {
			return domainerror.NewEmployeeError(
				domainerror.ErrCodeEmployeeHasPayslips,
				fmt.Sprintf("employee has %d payslip(s), delete them first", len(payslips)),
				domainerror.ErrEmployeeHasPayslips,
			)
		}

		for _, p := range payslips {
			transactionID, ok, err := payslip.ResolvePairedTransaction(ctx, uc.transactionRepo, uc.category, p, employee.Name)
			if err != nil {
				return err
			}

			if err := uc.payslipRepo.Delete(ctx, p.ID); err != nil {
				return fmt.Errorf("failed to delete payslip: %w", err)
			}
			output.DeletedPayslips++

			if !ok {
				continue
			}
			if err := uc.transactionRepo.Delete(ctx, transactionID); err != nil {
				return fmt.Errorf("failed to delete payroll transaction: %w", err)
			}
			output.DeletedTransactions++
		}

		if err := uc.employeeRepo.Delete(ctx, input.EmployeeID); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Employee deleted",
		"employeeID", input.EmployeeID,
		"policy", uc.policy,
		"deletedPayslips", output.DeletedPayslips,
	)

	output.Success = true
	return output, nil
}
