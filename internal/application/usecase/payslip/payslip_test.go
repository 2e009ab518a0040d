package payslip_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/payslip"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/persistence"
	"github.com/cashbook/backend/internal/integration/persistence/persistencetest"
)

var issueDay = time.Date(2024, 3, 28, 9, 30, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// failingPayslipRepo rejects every insert.
type failingPayslipRepo struct {
	adapter.PayslipRepository
}

func (failingPayslipRepo) Create(context.Context, *entity.Payslip) error {
	return errors.New("disk full")
}

type stubRenderer struct {
	adapter.ReportRenderer
	got adapter.PayslipDocument
	err error
}

func (s *stubRenderer) RenderPayslip(_ context.Context, doc adapter.PayslipDocument) ([]byte, error) {
	s.got = doc
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.3"), nil
}

type suite struct {
	db           *gorm.DB
	employees    adapter.EmployeeRepository
	payslips     adapter.PayslipRepository
	transactions adapter.TransactionRepository
	uow          adapter.UnitOfWork
	create       *payslip.CreatePayslipUseCase
	delete       *payslip.DeletePayslipUseCase
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	db := persistencetest.NewSQLiteDB(t)
	s := &suite{
		db:           db,
		employees:    persistence.NewEmployeeRepository(db),
		payslips:     persistence.NewPayslipRepository(db),
		transactions: persistence.NewTransactionRepository(db),
		uow:          persistence.NewUnitOfWork(db),
	}
	s.create = payslip.NewCreatePayslipUseCase(s.employees, s.payslips, s.transactions, s.uow, fixedClock{issueDay}, "")
	s.delete = payslip.NewDeletePayslipUseCase(s.payslips, s.transactions, s.uow, "")
	return s
}

func (s *suite) hire(t *testing.T, name, position, base string) *entity.Employee {
	t.Helper()
	e := entity.NewEmployee(name, position, entity.SalaryTypeFixed, decimal.RequireFromString(base))
	require.NoError(t, s.employees.Create(context.Background(), e))
	return e
}

func (s *suite) countTransactions(t *testing.T) int {
	t.Helper()
	all, err := s.transactions.FindAll(context.Background(), adapter.TransactionFilter{})
	require.NoError(t, err)
	return len(all)
}

func TestCreatePayslipUseCase(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	ahmad := s.hire(t, "Ahmad Wijaya", "Manager", "12000000")

	out, err := s.create.Execute(ctx, payslip.CreatePayslipInput{
		EmployeeID: ahmad.ID,
		Period:     "2024-03",
		Allowance:  decimal.RequireFromString("2000000"),
		Deduction:  decimal.RequireFromString("500000"),
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("13500000").Equal(out.NetSalary))
	assert.True(t, decimal.RequireFromString("12000000").Equal(out.BaseSalary))
	assert.Equal(t, "Ahmad Wijaya", out.EmployeeName)
	require.NotNil(t, out.TransactionID)

	txn, err := s.transactions.FindByID(ctx, *out.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeExpense, txn.Type)
	assert.Equal(t, entity.PayrollCategory, txn.Category)
	assert.Equal(t, "2024-03-28", txn.Date.String())
	assert.Equal(t, "Salary payment Ahmad Wijaya (Manager) - Period 2024-03", txn.Description)
	assert.True(t, decimal.RequireFromString("13500000").Equal(txn.Amount))
}

func TestCreatePayslipUseCase_Validation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	emp := s.hire(t, "Siti Rahayu", "Akuntan", "8000000")

	tests := []struct {
		name  string
		input payslip.CreatePayslipInput
		code  string
	}{
		{"bad period", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-13"}, "PAY-010001"},
		{"negative allowance", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Allowance: decimal.NewFromInt(-1)}, "PAY-010002"},
		{"negative deduction", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Deduction: decimal.NewFromInt(-1)}, "PAY-010003"},
		{"sub-cent allowance", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Allowance: decimal.RequireFromString("0.005")}, "PAY-010002"},
		{"allowance beyond column precision", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Allowance: decimal.RequireFromString("1e14")}, "PAY-010002"},
		{"sub-cent deduction", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Deduction: decimal.RequireFromString("0.005")}, "PAY-010003"},
		{"deduction beyond column precision", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Deduction: decimal.RequireFromString("1e14")}, "PAY-010003"},
		{"net salary beyond column precision", payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03", Allowance: decimal.RequireFromString("9999999999999.99")}, "PAY-010005"},
		{"unknown employee", payslip.CreatePayslipInput{EmployeeID: uuid.New(), Period: "2024-03"}, "PAY-020002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.create.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, domainerror.CodeOf(err))
		})
	}
	assert.Zero(t, s.countTransactions(t))
}

func TestCreatePayslipUseCase_NegativeNetIsBookedAsIncome(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	emp := s.hire(t, "Rizki Pratama", "Kurir", "150000")

	out, err := s.create.Execute(ctx, payslip.CreatePayslipInput{
		EmployeeID: emp.ID,
		Period:     "2024-03",
		Deduction:  decimal.RequireFromString("200000"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("-50000").Equal(out.NetSalary))

	txn, err := s.transactions.FindByID(ctx, *out.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeIncome, txn.Type)
	assert.True(t, decimal.RequireFromString("50000").Equal(txn.Amount))
}

func TestCreatePayslipUseCase_RollsBackTransactionWhenPayslipFails(t *testing.T) {
	s := newSuite(t)
	emp := s.hire(t, "Budi Santoso", "Staff Marketing", "6000000")

	uc := payslip.NewCreatePayslipUseCase(s.employees, failingPayslipRepo{s.payslips}, s.transactions, s.uow, fixedClock{issueDay}, "")
	_, err := uc.Execute(context.Background(), payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03"})
	require.Error(t, err)

	assert.Zero(t, s.countTransactions(t))
}

func TestDeletePayslipUseCase_Linked(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	emp := s.hire(t, "Dewi Lestari", "Admin", "5000000")

	created, err := s.create.Execute(ctx, payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03"})
	require.NoError(t, err)

	out, err := s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: created.ID})
	require.NoError(t, err)
	require.NotNil(t, out.DeletedTransactionID)
	assert.Equal(t, *created.TransactionID, *out.DeletedTransactionID)
	assert.Zero(t, s.countTransactions(t))

	_, err = s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: created.ID})
	assert.Equal(t, "PAY-020001", domainerror.CodeOf(err))
}

func TestDeletePayslipUseCase_LinkedTransactionAlreadyGone(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	emp := s.hire(t, "Dewi Lestari", "Admin", "5000000")

	created, err := s.create.Execute(ctx, payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: "2024-03"})
	require.NoError(t, err)
	require.NoError(t, s.transactions.Delete(ctx, *created.TransactionID))

	out, err := s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: created.ID})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Nil(t, out.DeletedTransactionID)
}

func TestDeletePayslipUseCase_Legacy(t *testing.T) {
	ctx := context.Background()

	legacy := func(t *testing.T, s *suite, emp *entity.Employee, period string) *entity.Payslip {
		t.Helper()
		p := entity.NewPayslip(emp.ID, period, emp.BaseSalary, decimal.Zero, decimal.Zero, emp.BaseSalary)
		require.NoError(t, s.payslips.Create(ctx, p))
		return p
	}
	payroll := func(t *testing.T, s *suite, emp *entity.Employee, period, amount string) *entity.Transaction {
		t.Helper()
		txn := entity.NewTransaction(civil.DateOf(issueDay), entity.PayrollCategory,
			entity.PayrollDescription(emp.Name, emp.Position, period), decimal.RequireFromString(amount), entity.TransactionTypeExpense)
		require.NoError(t, s.transactions.Create(ctx, txn))
		return txn
	}

	t.Run("single candidate is deleted", func(t *testing.T) {
		s := newSuite(t)
		emp := s.hire(t, "Siti Rahayu", "Akuntan", "8000000")
		p := legacy(t, s, emp, "2024-02")
		match := payroll(t, s, emp, "2024-02", "8000000")
		other := payroll(t, s, emp, "2024-01", "8000000")

		out, err := s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: p.ID})
		require.NoError(t, err)
		require.NotNil(t, out.DeletedTransactionID)
		assert.Equal(t, match.ID, *out.DeletedTransactionID)

		_, err = s.transactions.FindByID(ctx, other.ID)
		assert.NoError(t, err)
	})

	t.Run("duplicate candidates abort", func(t *testing.T) {
		s := newSuite(t)
		emp := s.hire(t, "Siti Rahayu", "Akuntan", "8000000")
		p := legacy(t, s, emp, "2024-02")
		payroll(t, s, emp, "2024-02", "8000000")
		payroll(t, s, emp, "2024-02", "8000000")

		_, err := s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: p.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrAmbiguousPayrollLink)
		assert.Equal(t, "PAY-030001", domainerror.CodeOf(err))

		_, err = s.payslips.FindByID(ctx, p.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, s.countTransactions(t))
	})

	t.Run("no candidate aborts", func(t *testing.T) {
		s := newSuite(t)
		emp := s.hire(t, "Siti Rahayu", "Akuntan", "8000000")
		p := legacy(t, s, emp, "2024-02")

		_, err := s.delete.Execute(ctx, payslip.DeletePayslipInput{PayslipID: p.ID})
		assert.Equal(t, domainerror.KindAmbiguousLink, domainerror.KindOf(err))
	})
}

func TestListAndPrintPayslips(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	emp := s.hire(t, "Ahmad Wijaya", "Manager", "12000000")

	for _, period := range []string{"2024-01", "2024-03", "2024-02"} {
		_, err := s.create.Execute(ctx, payslip.CreatePayslipInput{EmployeeID: emp.ID, Period: period})
		require.NoError(t, err)
	}

	list, err := payslip.NewListPayslipsUseCase(s.payslips).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03", list[0].Period)
	assert.Equal(t, "2024-01", list[2].Period)

	renderer := &stubRenderer{}
	printer := payslip.NewPrintPayslipUseCase(s.payslips, renderer, fixedClock{issueDay}, "CV Maju Jaya", "IDR")
	artifact, err := printer.Execute(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "payslip-ahmad-wijaya-2024-03.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.Equal(t, "CV Maju Jaya", renderer.got.Company)
	assert.True(t, decimal.RequireFromString("12000000").Equal(renderer.got.NetSalary))

	renderer.err = errors.New("font missing")
	_, err = printer.Execute(ctx, list[0].ID)
	assert.ErrorIs(t, err, domainerror.ErrRenderFailed)
	assert.Equal(t, "PAY-990001", domainerror.CodeOf(err))

	_, err = printer.Execute(ctx, uuid.New())
	assert.Equal(t, "PAY-020001", domainerror.CodeOf(err))
}
