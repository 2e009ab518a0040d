package employee_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/employee"
	"github.com/cashbook/backend/internal/application/usecase/payslip"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/persistence"
	"github.com/cashbook/backend/internal/integration/persistence/persistencetest"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func salary(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateEmployeeUseCase(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	uc := employee.NewCreateEmployeeUseCase(persistence.NewEmployeeRepository(db))
	ctx := context.Background()

	out, err := uc.Execute(ctx, employee.CreateEmployeeInput{
		Name:       " Rizki Pratama ",
		Position:   "Kurir",
		SalaryType: entity.SalaryTypeDaily,
		BaseSalary: salary("150000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rizki Pratama", out.Name)
	assert.Equal(t, entity.SalaryTypeDaily, out.SalaryType)

	tests := []struct {
		name  string
		input employee.CreateEmployeeInput
		code  string
	}{
		{"missing name", employee.CreateEmployeeInput{Position: "Staff", SalaryType: entity.SalaryTypeFixed, BaseSalary: salary("1")}, "EMP-010001"},
		{"missing position", employee.CreateEmployeeInput{Name: "A", SalaryType: entity.SalaryTypeFixed, BaseSalary: salary("1")}, "EMP-010002"},
		{"unknown salary type", employee.CreateEmployeeInput{Name: "A", Position: "B", SalaryType: "hourly", BaseSalary: salary("1")}, "EMP-010003"},
		{"missing salary", employee.CreateEmployeeInput{Name: "A", Position: "B", SalaryType: entity.SalaryTypeFixed}, "EMP-010005"},
		{"negative salary", employee.CreateEmployeeInput{Name: "A", Position: "B", SalaryType: entity.SalaryTypeFixed, BaseSalary: salary("-1")}, "EMP-010004"},
		{"sub-cent salary", employee.CreateEmployeeInput{Name: "A", Position: "B", SalaryType: entity.SalaryTypeFixed, BaseSalary: salary("0.005")}, "EMP-010004"},
		{"salary beyond column precision", employee.CreateEmployeeInput{Name: "A", Position: "B", SalaryType: entity.SalaryTypeFixed, BaseSalary: salary("1e14")}, "EMP-010004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, domainerror.CodeOf(err))
		})
	}
}

func TestUpdateEmployeeUseCase_KeepsIssuedPayslips(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	f := newFixture(t, db, entity.EmployeeDeleteRestrict)
	ctx := context.Background()

	emp := f.hire(t, "Siti Rahayu", "Akuntan", "8000000")
	issued := f.issue(t, emp.ID, "2024-03")

	update := employee.NewUpdateEmployeeUseCase(f.employees)
	out, err := update.Execute(ctx, employee.UpdateEmployeeInput{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Position:   "Senior Akuntan",
		SalaryType: entity.SalaryTypeFixed,
		BaseSalary: salary("9000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Akuntan", out.Position)

	got, err := payslip.NewGetPayslipUseCase(f.payslips).Execute(ctx, issued.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("8000000").Equal(got.BaseSalary))

	_, err = update.Execute(ctx, employee.UpdateEmployeeInput{
		EmployeeID: uuid.New(),
		Name:       "X",
		Position:   "Y",
		SalaryType: entity.SalaryTypeFixed,
		BaseSalary: salary("1"),
	})
	assert.Equal(t, "EMP-020001", domainerror.CodeOf(err))
}

func TestDeleteEmployeeUseCase_Restrict(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	f := newFixture(t, db, entity.EmployeeDeleteRestrict)
	ctx := context.Background()

	emp := f.hire(t, "Budi Santoso", "Staff Marketing", "6000000")
	f.issue(t, emp.ID, "2024-03")

	_, err := f.delete.Execute(ctx, employee.DeleteEmployeeInput{EmployeeID: emp.ID})
	require.Error(t, err)
	assert.Equal(t, "EMP-010006", domainerror.CodeOf(err))
	assert.ErrorIs(t, err, domainerror.ErrEmployeeHasPayslips)

	_, err = f.employees.FindByID(ctx, emp.ID)
	assert.NoError(t, err)

	idle := f.hire(t, "Dewi Lestari", "Admin", "5000000")
	out, err := f.delete.Execute(ctx, employee.DeleteEmployeeInput{EmployeeID: idle.ID})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Zero(t, out.DeletedPayslips)

	_, err = f.delete.Execute(ctx, employee.DeleteEmployeeInput{EmployeeID: idle.ID})
	assert.Equal(t, "EMP-020001", domainerror.CodeOf(err))
}

func TestDeleteEmployeeUseCase_Cascade(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	f := newFixture(t, db, entity.EmployeeDeleteCascade)
	ctx := context.Background()

	emp := f.hire(t, "Ahmad Wijaya", "Manager", "12000000")
	march := f.issue(t, emp.ID, "2024-03")
	april := f.issue(t, emp.ID, "2024-04")

	out, err := f.delete.Execute(ctx, employee.DeleteEmployeeInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, out.DeletedPayslips)
	assert.Equal(t, 2, out.DeletedTransactions)

	for _, p := range []*payslip.PayslipOutput{march, april} {
		_, err := f.transactions.FindByID(ctx, *p.TransactionID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	}
	_, err = f.employees.FindByID(ctx, emp.ID)
	assert.ErrorIs(t, err, domainerror.ErrEmployeeNotFound)
}

func TestDeleteEmployeeUseCase_CascadeAbortsOnAmbiguousLegacyPayslip(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	f := newFixture(t, db, entity.EmployeeDeleteCascade)
	ctx := context.Background()

	emp := f.hire(t, "Ahmad Wijaya", "Manager", "12000000")
	linked := f.issue(t, emp.ID, "2024-03")

	legacy := entity.NewPayslip(emp.ID, "2024-04", decimal.RequireFromString("12000000"), decimal.Zero, decimal.Zero, decimal.RequireFromString("12000000"))
	require.NoError(t, f.payslips.Create(ctx, legacy))

	_, err := f.delete.Execute(ctx, employee.DeleteEmployeeInput{EmployeeID: emp.ID})
	require.Error(t, err)
	assert.Equal(t, domainerror.KindAmbiguousLink, domainerror.KindOf(err))

	_, err = f.transactions.FindByID(ctx, *linked.TransactionID)
	assert.NoError(t, err, "rolled back deletion must keep the linked transaction")
	remaining, err := f.payslips.FindByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

type fixture struct {
	employees    adapter.EmployeeRepository
	payslips     adapter.PayslipRepository
	transactions adapter.TransactionRepository
	create       *payslip.CreatePayslipUseCase
	delete       *employee.DeleteEmployeeUseCase
}

func newFixture(t *testing.T, db *gorm.DB, policy entity.EmployeeDeletePolicy) *fixture {
	t.Helper()
	employees := persistence.NewEmployeeRepository(db)
	payslips := persistence.NewPayslipRepository(db)
	transactions := persistence.NewTransactionRepository(db)
	uow := persistence.NewUnitOfWork(db)
	clock := fixedClock{now: time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC)}

	return &fixture{
		employees:    employees,
		payslips:     payslips,
		transactions: transactions,
		create:       payslip.NewCreatePayslipUseCase(employees, payslips, transactions, uow, clock, ""),
		delete:       employee.NewDeleteEmployeeUseCase(employees, payslips, transactions, uow, policy, ""),
	}
}

func (f *fixture) hire(t *testing.T, name, position, base string) *employee.EmployeeOutput {
	t.Helper()
	out, err := employee.NewCreateEmployeeUseCase(f.employees).Execute(context.Background(), employee.CreateEmployeeInput{
		Name:       name,
		Position:   position,
		SalaryType: entity.SalaryTypeFixed,
		BaseSalary: salary(base),
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) issue(t *testing.T, employeeID uuid.UUID, period string) *payslip.PayslipOutput {
	t.Helper()
	out, err := f.create.Execute(context.Background(), payslip.CreatePayslipInput{
		EmployeeID: employeeID,
		Period:     period,
		Allowance:  decimal.Zero,
		Deduction:  decimal.Zero,
	})
	require.NoError(t, err)
	return out
}
