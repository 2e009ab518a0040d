package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/usecase/employee"
)

// EmployeeRequest represents the request body for employee creation and update.
type EmployeeRequest struct {
	Name       string           `json:"name"`
	Position   string           `json:"position"`
	SalaryType string           `json:"salary_type" binding:"required"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
}

// EmployeeResponse represents a single employee in API responses.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	SalaryType string    `json:"salary_type"`
	BaseSalary string    `json:"base_salary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeleteEmployeeResponse represents the response of employee deletion.
type DeleteEmployeeResponse struct {
	Success             bool `json:"success"`
	DeletedPayslips     int  `json:"deleted_payslips"`
	DeletedTransactions int  `json:"deleted_transactions"`
}

// ToEmployeeResponse converts an EmployeeOutput to an EmployeeResponse DTO.
func ToEmployeeResponse(e *employee.EmployeeOutput) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Position:   e.Position,
		SalaryType: string(e.SalaryType),
		BaseSalary: Money(e.BaseSalary),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEmployeeListResponse converts employee outputs to response DTOs.
func ToEmployeeListResponse(outputs []*employee.EmployeeOutput) []EmployeeResponse {
	response := make([]EmployeeResponse, 0, len(outputs))
	for _, e := range outputs {
		response = append(response, ToEmployeeResponse(e))
	}
	return response
}
