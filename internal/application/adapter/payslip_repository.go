package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/domain/entity"
)

// PayslipRepository defines the interface for payslip persistence operations.
type PayslipRepository interface {
	// Create creates a new payslip in the database.
	Create(ctx context.Context, payslip *entity.Payslip) error

	// FindByID retrieves a payslip together with its employee.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PayslipWithEmployee, error)

	// FindAll retrieves every payslip ordered by period, newest first.
	FindAll(ctx context.Context) ([]*entity.PayslipWithEmployee, error)

	// FindByEmployee retrieves the payslips of one employee.
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Payslip, error)

	// ExistsByEmployee checks whether any payslip references the employee.
	ExistsByEmployee(ctx context.Context, employeeID uuid.UUID) (bool, error)

	// ExistsByTransaction checks whether a payslip is paired with the transaction.
	ExistsByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error)

	// Delete removes a payslip from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
