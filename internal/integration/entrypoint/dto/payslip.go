package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/usecase/payslip"
)

// CreatePayslipRequest represents the request body for payslip creation.
// Missing allowance and deduction default to zero.
type CreatePayslipRequest struct {
	EmployeeID string           `json:"employee_id" binding:"required"`
	Period     string           `json:"period" binding:"required"`
	Allowance  *decimal.Decimal `json:"allowance"`
	Deduction  *decimal.Decimal `json:"deduction"`
}

// PayslipResponse represents a single payslip in API responses.
type PayslipResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	Position      string    `json:"position"`
	SalaryType    string    `json:"salary_type"`
	Period        string    `json:"period"`
	BaseSalary    string    `json:"base_salary"`
	Allowance     string    `json:"allowance"`
	Deduction     string    `json:"deduction"`
	NetSalary     string    `json:"net_salary"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DeletePayslipResponse represents the response of payslip deletion.
type DeletePayslipResponse struct {
	Success              bool    `json:"success"`
	DeletedTransactionID *string `json:"deleted_transaction_id,omitempty"`
}

// ToPayslipResponse converts a PayslipOutput to a PayslipResponse DTO.
func ToPayslipResponse(p *payslip.PayslipOutput) PayslipResponse {
	response := PayslipResponse{
		ID:           p.ID.String(),
		EmployeeID:   p.EmployeeID.String(),
		EmployeeName: p.EmployeeName,
		Position:     p.Position,
		SalaryType:   string(p.SalaryType),
		Period:       p.Period,
		BaseSalary:   Money(p.BaseSalary),
		Allowance:    Money(p.Allowance),
		Deduction:    Money(p.Deduction),
		NetSalary:    Money(p.NetSalary),
		CreatedAt:    p.CreatedAt,
	}
	if p.TransactionID != nil {
		id := p.TransactionID.String()
		response.TransactionID = &id
	}
	return response
}

// ToPayslipListResponse converts payslip outputs to response DTOs.
func ToPayslipListResponse(outputs []*payslip.PayslipOutput) []PayslipResponse {
	response := make([]PayslipResponse, 0, len(outputs))
	for _, p := range outputs {
		response = append(response, ToPayslipResponse(p))
	}
	return response
}
