package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null;index"`
	Position   string          `gorm:"type:varchar(255);not null"`
	SalaryType string          `gorm:"type:varchar(10);not null"`
	BaseSalary decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:         m.ID,
		Name:       m.Name,
		Position:   m.Position,
		SalaryType: entity.SalaryType(m.SalaryType),
		BaseSalary: m.BaseSalary,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// EmployeeFromEntity creates an EmployeeModel from a domain Employee entity.
func EmployeeFromEntity(employee *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:         employee.ID,
		Name:       employee.Name,
		Position:   employee.Position,
		SalaryType: string(employee.SalaryType),
		BaseSalary: employee.BaseSalary,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}
