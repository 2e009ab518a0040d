package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// CreateEmployeeInput represents the input for employee creation.
type CreateEmployeeInput struct {
	Name       string
	Position   string
	SalaryType entity.SalaryType
	BaseSalary *decimal.Decimal
}

// CreateEmployeeUseCase handles employee creation logic.
type CreateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewCreateEmployeeUseCase creates a new CreateEmployeeUseCase instance.
func NewCreateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute performs the employee creation.
func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, input CreateEmployeeInput) (*EmployeeOutput, error) {
	f := fields{
		Name:       input.Name,
		Position:   input.Position,
		SalaryType: input.SalaryType,
		BaseSalary: input.BaseSalary,
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	employee := entity.NewEmployee(f.Name, f.Position, f.SalaryType, *f.BaseSalary)
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employeeID", employee.ID, "name", employee.Name)

	return toEmployeeOutput(employee), nil
}
