package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// UpdateEmployeeInput represents the input for employee update. Every field is replaced.
// Existing payslips keep the salary they were issued with.
type UpdateEmployeeInput struct {
	EmployeeID uuid.UUID
	Name       string
	Position   string
	SalaryType entity.SalaryType
	BaseSalary *decimal.Decimal
}

// UpdateEmployeeUseCase handles employee update logic.
type UpdateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewUpdateEmployeeUseCase creates a new UpdateEmployeeUseCase instance.
func NewUpdateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute performs the employee update.
func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, input UpdateEmployeeInput) (*EmployeeOutput, error) {
	f := fields{
		Name:       input.Name,
		Position:   input.Position,
		SalaryType: input.SalaryType,
		BaseSalary: input.BaseSalary,
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	employee, err := uc.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find employee")
	}

	employee.Name = f.Name
	employee.Position = f.Position
	employee.SalaryType = f.SalaryType
	employee.BaseSalary = *f.BaseSalary
	employee.UpdatedAt = time.Now().UTC()

	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeOutput(employee), nil
}
