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

// employeeRepository implements the adapter.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB) adapter.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return conn(ctx, r.db).Create(model.EmployeeFromEntity(employee)).Error
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeModel model.EmployeeModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&employeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmployeeNotFound
		}
		return nil, result.Error
	}
	return employeeModel.ToEntity(), nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []model.EmployeeModel
	if err := conn(ctx, r.db).Order("name ASC, created_at ASC").Find(&employeeModels).Error; err != nil {
		return nil, err
	}

	employees := make([]*entity.Employee, len(employeeModels))
	for i := range employeeModels {
		employees[i] = employeeModels[i].ToEntity()
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return conn(ctx, r.db).Save(model.EmployeeFromEntity(employee)).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.EmployeeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.EmployeeModel{}).Count(&count).Error
	return count, err
}
