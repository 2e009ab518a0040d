package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollCategory is the transaction category used for salary payments.
const PayrollCategory = "Payroll"

// PeriodLayout is the time layout of a payslip period.
const PeriodLayout = "2006-01"

// Payslip is the payroll record of one employee for one month.
type Payslip struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	Period        string          // YYYY-MM
	BaseSalary    decimal.Decimal // snapshot of the employee's salary at creation
	Allowance     decimal.Decimal
	Deduction     decimal.Decimal
	NetSalary     decimal.Decimal
	TransactionID *uuid.UUID // paired payroll expense, nil on legacy rows
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPayslip creates a new Payslip entity. The net salary is supplied by the caller.
func NewPayslip(
	employeeID uuid.UUID,
	period string,
	baseSalary, allowance, deduction, netSalary decimal.Decimal,
) *Payslip {
	now := time.Now().UTC()

	return &Payslip{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Period:     period,
		BaseSalary: baseSalary,
		Allowance:  allowance,
		Deduction:  deduction,
		NetSalary:  netSalary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// PayslipWithEmployee represents a payslip with its employee's presentation fields.
type PayslipWithEmployee struct {
	Payslip      *Payslip
	EmployeeName string
	Position     string
	SalaryType   SalaryType
}

// PayrollDescription builds the description of the expense transaction paired with a payslip.
func PayrollDescription(employeeName, position, period string) string {
	return fmt.Sprintf("Salary payment %s (%s) - Period %s", employeeName, position, period)
}
