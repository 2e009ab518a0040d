package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// PayslipModel represents the payslips table in the database.
type PayslipModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Period        string          `gorm:"type:varchar(7);not null;index"`
	BaseSalary    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Allowance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deduction     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	NetSalary     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransactionID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Employee *EmployeeModel `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the PayslipModel.
func (PayslipModel) TableName() string {
	return "payslips"
}

// ToEntity converts a PayslipModel to a domain Payslip entity.
func (m *PayslipModel) ToEntity() *entity.Payslip {
	return &entity.Payslip{
		ID:            m.ID,
		EmployeeID:    m.EmployeeID,
		Period:        m.Period,
		BaseSalary:    m.BaseSalary,
		Allowance:     m.Allowance,
		Deduction:     m.Deduction,
		NetSalary:     m.NetSalary,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithEmployee converts a PayslipModel with its preloaded Employee.
func (m *PayslipModel) ToEntityWithEmployee() *entity.PayslipWithEmployee {
	result := &entity.PayslipWithEmployee{
		Payslip: m.ToEntity(),
	}
	if m.Employee != nil {
		result.EmployeeName = m.Employee.Name
		result.Position = m.Employee.Position
		result.SalaryType = entity.SalaryType(m.Employee.SalaryType)
	}
	return result
}

// PayslipFromEntity creates a PayslipModel from a domain Payslip entity.
func PayslipFromEntity(payslip *entity.Payslip) *PayslipModel {
	return &PayslipModel{
		ID:            payslip.ID,
		EmployeeID:    payslip.EmployeeID,
		Period:        payslip.Period,
		BaseSalary:    payslip.BaseSalary,
		Allowance:     payslip.Allowance,
		Deduction:     payslip.Deduction,
		NetSalary:     payslip.NetSalary,
		TransactionID: payslip.TransactionID,
		CreatedAt:     payslip.CreatedAt,
		UpdatedAt:     payslip.UpdatedAt,
	}
}
