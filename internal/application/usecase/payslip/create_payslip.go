package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// CreatePayslipInput represents the input for payslip creation.
type CreatePayslipInput struct {
	EmployeeID uuid.UUID
	Period     string // YYYY-MM
	Allowance  decimal.Decimal
	Deduction  decimal.Decimal
}

// CreatePayslipUseCase issues a payslip and books its payroll expense.
type CreatePayslipUseCase struct {
	employeeRepo    adapter.EmployeeRepository
	payslipRepo     adapter.PayslipRepository
	transactionRepo adapter.TransactionRepository
	uow             adapter.UnitOfWork
	clock           adapter.Clock
	category        string
}

// NewCreatePayslipUseCase creates a new CreatePayslipUseCase instance.
func NewCreatePayslipUseCase(
	employeeRepo adapter.EmployeeRepository,
	payslipRepo adapter.PayslipRepository,
	transactionRepo adapter.TransactionRepository,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
	category string,
) *CreatePayslipUseCase {
	if category == "" {
		category = entity.PayrollCategory
	}
	return &CreatePayslipUseCase{
		employeeRepo:    employeeRepo,
		payslipRepo:     payslipRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
		clock:           clock,
		category:        category,
	}
}

// Execute snapshots the employee's base salary, computes the net salary and
// stores the payslip together with its paired transaction. Either both rows
// are written or neither is.
func (uc *CreatePayslipUseCase) Execute(ctx context.Context, input CreatePayslipInput) (*PayslipOutput, error) {
	period, err := ledger.ParsePayPeriod(input.Period)
	if err != nil {
		return nil, err
	}

	if input.Allowance.IsNegative() || !ledger.IsMoney(input.Allowance) {
		return nil, domainerror.NewPayslipError(
			domainerror.ErrCodeInvalidAllowance,
			moneyMessage("allowance"),
			domainerror.ErrInvalidAllowance,
		)
	}
	if input.Deduction.IsNegative() || !ledger.IsMoney(input.Deduction) {
		return nil, domainerror.NewPayslipError(
			domainerror.ErrCodeInvalidDeduction,
			moneyMessage("deduction"),
			domainerror.ErrInvalidDeduction,
		)
	}

	var output *PayslipOutput
	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		employee, err := uc.employeeRepo.FindByID(ctx, input.EmployeeID)
		if err != nil {
			if errors.Is(err, domainerror.ErrEmployeeNotFound) {
				return domainerror.NewPayslipError(
					domainerror.ErrCodePayslipEmployeeNotFound,
					"employee not found",
					domainerror.ErrEmployeeNotFound,
				)
			}
			return fmt.Errorf("failed to find employee: %w", err)
		}

		net := ledger.NetSalary(employee.BaseSalary, input.Allowance, input.Deduction)
		if !ledger.IsMoney(net) {
			return domainerror.NewPayslipError(
				domainerror.ErrCodeNetSalaryOutOfRange,
				fmt.Sprintf("net salary must have at most %d integer digits", ledger.MoneyIntegerDigits),
				domainerror.ErrNetSalaryOutOfRange,
			)
		}
		kind, amount := PayrollEntry(net)

		transaction := entity.NewTransaction(
			civil.DateOf(uc.clock.Now()),
			uc.category,
			entity.PayrollDescription(employee.Name, employee.Position, period),
			amount,
			kind,
		)
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create payroll transaction: %w", err)
		}

		payslip := entity.NewPayslip(employee.ID, period, employee.BaseSalary, input.Allowance, input.Deduction, net)
		payslip.TransactionID = &transaction.ID
		if err := uc.payslipRepo.Create(ctx, payslip); err != nil {
			return fmt.Errorf("failed to create payslip: %w", err)
		}

		output = toPayslipOutput(&entity.PayslipWithEmployee{
			Payslip:      payslip,
			EmployeeName: employee.Name,
			Position:     employee.Position,
			SalaryType:   employee.SalaryType,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Payslip issued",
		"payslipID", output.ID,
		"employeeID", output.EmployeeID,
		"period", output.Period,
		"netSalary", output.NetSalary.String(),
	)

	return output, nil
}

func moneyMessage(field string) string {
	return fmt.Sprintf("%s must not be negative and must have at most %d decimal places and %d integer digits",
		field, ledger.MoneyScale, ledger.MoneyIntegerDigits)
}
