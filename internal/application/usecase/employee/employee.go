// Package employee contains employee-related use cases.
package employee

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
)

const (
	// MaxNameLength is the maximum allowed length for employee names.
	MaxNameLength = 255
	// MaxPositionLength is the maximum allowed length for positions.
	MaxPositionLength = 255
)

// EmployeeOutput represents a single employee in the output.
type EmployeeOutput struct {
	ID         uuid.UUID
	Name       string
	Position   string
	SalaryType entity.SalaryType
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// fields is the user-supplied part of an employee.
type fields struct {
	Name       string
	Position   string
	SalaryType entity.SalaryType
	BaseSalary *decimal.Decimal
}

func (f *fields) validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Position = strings.TrimSpace(f.Position)

	if f.Name == "" || utf8.RuneCountInString(f.Name) > MaxNameLength {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidEmployeeName,
			fmt.Sprintf("name must be between 1 and %d characters", MaxNameLength),
			domainerror.ErrInvalidEmployeeName,
		)
	}
	if f.Position == "" || utf8.RuneCountInString(f.Position) > MaxPositionLength {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidPosition,
			fmt.Sprintf("position must be between 1 and %d characters", MaxPositionLength),
			domainerror.ErrInvalidPosition,
		)
	}
	if !f.SalaryType.IsValid() {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidSalaryType,
			"salary type must be 'fixed' or 'daily'",
			domainerror.ErrInvalidSalaryType,
		)
	}
	if f.BaseSalary == nil {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeMissingEmployeeData,
			"base salary is required",
			domainerror.ErrInvalidBaseSalary,
		)
	}
	if f.BaseSalary.IsNegative() {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidBaseSalary,
			"base salary must not be negative",
			domainerror.ErrInvalidBaseSalary,
		)
	}
	if !ledger.IsMoney(*f.BaseSalary) {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidBaseSalary,
			fmt.Sprintf("base salary must have at most %d decimal places and %d integer digits", ledger.MoneyScale, ledger.MoneyIntegerDigits),
			domainerror.ErrInvalidBaseSalary,
		)
	}
	return nil
}

func toEmployeeOutput(e *entity.Employee) *EmployeeOutput {
	return &EmployeeOutput{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		SalaryType: e.SalaryType,
		BaseSalary: e.BaseSalary,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, domainerror.ErrEmployeeNotFound) {
		return domainerror.NewEmployeeError(
			domainerror.ErrCodeEmployeeNotFound,
			"employee not found",
			domainerror.ErrEmployeeNotFound,
		)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
