package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
)

// GetEmployeeUseCase handles fetching a single employee.
type GetEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewGetEmployeeUseCase creates a new GetEmployeeUseCase instance.
func NewGetEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{employeeRepo: employeeRepo}
}

// Execute returns the employee with the given ID.
func (uc *GetEmployeeUseCase) Execute(ctx context.Context, id uuid.UUID) (*EmployeeOutput, error) {
	employee, err := uc.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find employee")
	}
	return toEmployeeOutput(employee), nil
}

// ListEmployeesUseCase handles listing employees.
type ListEmployeesUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewListEmployeesUseCase creates a new ListEmployeesUseCase instance.
func NewListEmployeesUseCase(employeeRepo adapter.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo}
}

// Execute returns every employee ordered by name.
func (uc *ListEmployeesUseCase) Execute(ctx context.Context) ([]*EmployeeOutput, error) {
	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	output := make([]*EmployeeOutput, 0, len(employees))
	for _, e := range employees {
		output = append(output, toEmployeeOutput(e))
	}
	return output, nil
}
