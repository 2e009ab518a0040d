package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/persistence/model"
)

// payslipRepository implements the adapter.PayslipRepository interface.
type payslipRepository struct {
	db *gorm.DB
}

// NewPayslipRepository creates a new payslip repository instance.
func NewPayslipRepository(db *gorm.DB) adapter.PayslipRepository {
	return &payslipRepository{db: db}
}

// Create creates a new payslip in the database.
func (r *payslipRepository) Create(ctx context.Context, payslip *entity.Payslip) error {
	return conn(ctx, r.db).Create(model.PayslipFromEntity(payslip)).Error
}

// FindByID retrieves a payslip together with its employee.
func (r *payslipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PayslipWithEmployee, error) {
	var payslipModel model.PayslipModel
	result := conn(ctx, r.db).
		Preload("Employee").
		Where("id = ?", id).
		First(&payslipModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPayslipNotFound
		}
		return nil, result.Error
	}
	return payslipModel.ToEntityWithEmployee(), nil
}

// FindAll retrieves every payslip ordered by period, newest first.
func (r *payslipRepository) FindAll(ctx context.Context) ([]*entity.PayslipWithEmployee, error) {
	var payslipModels []model.PayslipModel
	result := conn(ctx, r.db).
		Preload("Employee").
		Order("period DESC, created_at DESC").
		Find(&payslipModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payslips := make([]*entity.PayslipWithEmployee, len(payslipModels))
	for i := range payslipModels {
		payslips[i] = payslipModels[i].ToEntityWithEmployee()
	}
	return payslips, nil
}

// FindByEmployee retrieves the payslips of one employee.
func (r *payslipRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Payslip, error) {
	var payslipModels []model.PayslipModel
	result := conn(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("period ASC").
		Find(&payslipModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payslips := make([]*entity.Payslip, len(payslipModels))
	for i := range payslipModels {
		payslips[i] = payslipModels[i].ToEntity()
	}
	return payslips, nil
}

// ExistsByEmployee checks whether any payslip references the employee.
func (r *payslipRepository) ExistsByEmployee(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.PayslipModel{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

// ExistsByTransaction checks whether a payslip is paired with the transaction.
func (r *payslipRepository) ExistsByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.PayslipModel{}).Where("transaction_id = ?", transactionID).Count(&count).Error
	return count > 0, err
}

// Delete removes a payslip from the database.
func (r *payslipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.PayslipModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPayslipNotFound
	}
	return nil
}
