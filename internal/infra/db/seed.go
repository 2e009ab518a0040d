package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/payslip"
	"github.com/cashbook/backend/internal/domain/entity"
)

type demoEmployee struct {
	name       string
	position   string
	salaryType entity.SalaryType
	baseSalary int64
}

var demoEmployees = []demoEmployee{
	{"Ahmad Wijaya", "Manager", entity.SalaryTypeFixed, 12000000},
	{"Siti Rahayu", "Accountant", entity.SalaryTypeFixed, 8000000},
	{"Budi Santoso", "Marketing Staff", entity.SalaryTypeFixed, 6000000},
	{"Dewi Lestari", "Admin", entity.SalaryTypeFixed, 5000000},
	{"Rizki Pratama", "Courier", entity.SalaryTypeDaily, 150000},
}

type demoTransaction struct {
	daysAgo     int
	category    string
	description string
	amount      int64
	kind        entity.TransactionType
}

var demoTransactions = []demoTransaction{
	{10, "Sales", "Product sale to PT ABC", 15000000, entity.TransactionTypeIncome},
	{9, "Services", "Consulting services", 5000000, entity.TransactionTypeIncome},
	{8, "Operations", "Office stationery", 750000, entity.TransactionTypeExpense},
	{7, "Sales", "Retail sales", 8500000, entity.TransactionTypeIncome},
	{6, "Utilities", "Electricity and water", 2500000, entity.TransactionTypeExpense},
	{5, "Investment", "Investment dividend", 3000000, entity.TransactionTypeIncome},
	{4, "Purchasing", "Stock purchase", 12000000, entity.TransactionTypeExpense},
	{2, "Transport", "Delivery costs", 1500000, entity.TransactionTypeExpense},
	{1, "Marketing", "Online advertising", 3500000, entity.TransactionTypeExpense},
	{0, "Sales", "Today's sales", 6500000, entity.TransactionTypeIncome},
}

// demoPayslips are issued for the previous month, indexed into demoEmployees.
var demoPayslips = []struct {
	employee  int
	allowance int64
	deduction int64
}{
	{0, 2000000, 500000},
	{1, 1000000, 300000},
	{2, 500000, 200000},
}

// SeedResult reports what a seeding run inserted.
type SeedResult struct {
	Skipped      bool
	Employees    int
	Transactions int
	Payslips     int
}

// Seeder inserts demo data into an empty cash book.
type Seeder struct {
	employeeRepo    adapter.EmployeeRepository
	transactionRepo adapter.TransactionRepository
	createPayslip   *payslip.CreatePayslipUseCase
	uow             adapter.UnitOfWork
	clock           adapter.Clock
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(
	employeeRepo adapter.EmployeeRepository,
	transactionRepo adapter.TransactionRepository,
	createPayslip *payslip.CreatePayslipUseCase,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
) *Seeder {
	return &Seeder{
		employeeRepo:    employeeRepo,
		transactionRepo: transactionRepo,
		createPayslip:   createPayslip,
		uow:             uow,
		clock:           clock,
	}
}

// Seed inserts five employees, sample transactions dated relative to today
// and last month's payslips. It does nothing when employees already exist.
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		slog.Info("Demo data already present, skipping seed", "employees", count)
		return &SeedResult{Skipped: true}, nil
	}

	result := &SeedResult{}
	err = s.uow.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Now().UTC()
		today := civil.DateOf(now)

		employees := make([]*entity.Employee, 0, len(demoEmployees))
		for _, d := range demoEmployees {
			e := entity.NewEmployee(d.name, d.position, d.salaryType, decimal.NewFromInt(d.baseSalary))
			if err := s.employeeRepo.Create(ctx, e); err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", d.name, err)
			}
			employees = append(employees, e)
			result.Employees++
		}

		for _, d := range demoTransactions {
			t := entity.NewTransaction(
				today.AddDays(-d.daysAgo),
				d.category,
				d.description,
				decimal.NewFromInt(d.amount),
				d.kind,
			)
			t.CreatedAt = now.Add(-time.Duration(d.daysAgo) * 24 * time.Hour)
			t.UpdatedAt = t.CreatedAt
			if err := s.transactionRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("failed to seed transaction: %w", err)
			}
			result.Transactions++
		}

		period := lastMonth(today)
		for _, d := range demoPayslips {
			_, err := s.createPayslip.Execute(ctx, payslip.CreatePayslipInput{
				EmployeeID: employees[d.employee].ID,
				Period:     period,
				Allowance:  decimal.NewFromInt(d.allowance),
				Deduction:  decimal.NewFromInt(d.deduction),
			})
			if err != nil {
				return fmt.Errorf("failed to seed payslip: %w", err)
			}
			result.Payslips++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Demo data seeded",
		"employees", result.Employees,
		"transactions", result.Transactions,
		"payslips", result.Payslips,
	)
	return result, nil
}

// lastMonth returns the YYYY-MM period before the month of d.
func lastMonth(d civil.Date) string {
	year, month := d.Year, d.Month-1
	if month < time.January {
		year, month = year-1, time.December
	}
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
