package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryType describes how an employee's base salary is expressed.
type SalaryType string

const (
	SalaryTypeFixed SalaryType = "fixed" // monthly salary
	SalaryTypeDaily SalaryType = "daily" // day rate
)

// IsValid reports whether s is a known salary type.
func (s SalaryType) IsValid() bool {
	return s == SalaryTypeFixed || s == SalaryTypeDaily
}

// Employee represents a person on the payroll.
type Employee struct {
	ID         uuid.UUID
	Name       string
	Position   string
	SalaryType SalaryType
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewEmployee creates a new Employee entity.
func NewEmployee(name, position string, salaryType SalaryType, baseSalary decimal.Decimal) *Employee {
	now := time.Now().UTC()

	return &Employee{
		ID:         uuid.New(),
		Name:       name,
		Position:   position,
		SalaryType: salaryType,
		BaseSalary: baseSalary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// EmployeeDeletePolicy decides what happens to payslips when their employee is removed.
type EmployeeDeletePolicy string

const (
	EmployeeDeleteRestrict EmployeeDeletePolicy = "restrict"
	EmployeeDeleteCascade  EmployeeDeletePolicy = "cascade"
)

// IsValid reports whether p is a known policy.
func (p EmployeeDeletePolicy) IsValid() bool {
	return p == EmployeeDeleteRestrict || p == EmployeeDeleteCascade
}
