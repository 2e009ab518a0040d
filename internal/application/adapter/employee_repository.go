package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	// FindAll returns every employee ordered by name.
	FindAll(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
