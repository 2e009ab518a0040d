// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashbook/backend/config"
	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/application/usecase/auth"
	"github.com/cashbook/backend/internal/application/usecase/employee"
	"github.com/cashbook/backend/internal/application/usecase/payslip"
	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/application/usecase/transaction"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
	"github.com/cashbook/backend/internal/infra/cache"
	"github.com/cashbook/backend/internal/infra/db"
	"github.com/cashbook/backend/internal/infra/server/router"
	"github.com/cashbook/backend/internal/integration/adapters"
	"github.com/cashbook/backend/internal/integration/entrypoint/controller"
	"github.com/cashbook/backend/internal/integration/entrypoint/middleware"
	"github.com/cashbook/backend/internal/integration/persistence"
	"github.com/cashbook/backend/internal/integration/renderer"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	Seeder *db.Seeder

	CashBook         *report.GetCashBookUseCase
	ExportCashBook   *report.ExportCashBookUseCase
	ProfitLoss       *report.GetProfitLossUseCase
	ExportProfitLoss *report.ExportProfitLossUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil. A nil clock reads the wall clock in the configured
// report time zone.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	if clock == nil {
		clock = adapter.SystemClock{Location: reportLocation(cfg)}
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	employeeRepo := persistence.NewEmployeeRepository(gormDB)
	payslipRepo := persistence.NewPayslipRepository(gormDB)
	uow := persistence.NewUnitOfWork(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	reportRenderer := renderer.NewReportRenderer()

	settings := reportSettings(cfg)
	payrollCategory := cfg.Payroll.Category
	deletePolicy := entity.EmployeeDeletePolicy(cfg.Payroll.EmployeeDeletePolicy)
	if !deletePolicy.IsValid() {
		slog.Warn("Unknown employee delete policy, using restrict", "policy", cfg.Payroll.EmployeeDeletePolicy)
		deletePolicy = entity.EmployeeDeleteRestrict
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, payslipRepo)

	// Create employee use cases
	listEmployeesUseCase := employee.NewListEmployeesUseCase(employeeRepo)
	getEmployeeUseCase := employee.NewGetEmployeeUseCase(employeeRepo)
	createEmployeeUseCase := employee.NewCreateEmployeeUseCase(employeeRepo)
	updateEmployeeUseCase := employee.NewUpdateEmployeeUseCase(employeeRepo)
	deleteEmployeeUseCase := employee.NewDeleteEmployeeUseCase(employeeRepo, payslipRepo, transactionRepo, uow, deletePolicy, payrollCategory)

	// Create payslip use cases
	listPayslipsUseCase := payslip.NewListPayslipsUseCase(payslipRepo)
	getPayslipUseCase := payslip.NewGetPayslipUseCase(payslipRepo)
	createPayslipUseCase := payslip.NewCreatePayslipUseCase(employeeRepo, payslipRepo, transactionRepo, uow, clock, payrollCategory)
	deletePayslipUseCase := payslip.NewDeletePayslipUseCase(payslipRepo, transactionRepo, uow, payrollCategory)
	printPayslipUseCase := payslip.NewPrintPayslipUseCase(payslipRepo, reportRenderer, clock, settings.Company, settings.Currency)

	// Create report use cases
	dashboardUseCase := report.NewGetDashboardUseCase(transactionRepo)
	cashBookUseCase := report.NewGetCashBookUseCase(transactionRepo, clock, settings)
	exportCashBookUseCase := report.NewExportCashBookUseCase(transactionRepo, reportRenderer, clock, settings)
	profitLossUseCase := report.NewGetProfitLossUseCase(transactionRepo, clock, settings)
	exportProfitLossUseCase := report.NewExportProfitLossUseCase(transactionRepo, reportRenderer, clock, settings)

	// Create controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = cache.HealthCheck(redisClient)
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	employeeController := controller.NewEmployeeController(
		listEmployeesUseCase,
		getEmployeeUseCase,
		createEmployeeUseCase,
		updateEmployeeUseCase,
		deleteEmployeeUseCase,
	)

	payslipController := controller.NewPayslipController(
		listPayslipsUseCase,
		getPayslipUseCase,
		createPayslipUseCase,
		deletePayslipUseCase,
		printPayslipUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		cashBookUseCase,
		exportCashBookUseCase,
		profitLossUseCase,
		exportProfitLossUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(
		redisClient,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.Window,
		cfg.RateLimit.Enabled,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		employeeController,
		payslipController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               gormDB,
		Router:           r,
		Seeder:           db.NewSeeder(employeeRepo, transactionRepo, createPayslipUseCase, uow, clock),
		CashBook:         cashBookUseCase,
		ExportCashBook:   exportCashBookUseCase,
		ProfitLoss:       profitLossUseCase,
		ExportProfitLoss: exportProfitLossUseCase,
	}
}

// reportSettings converts the report configuration. An unknown week start
// falls back to Sunday.
func reportSettings(cfg *config.Config) report.Settings {
	weekStart, err := ledger.ParseWeekday(cfg.Report.WeekStart)
	if err != nil {
		slog.Warn("Unknown report week start, using sunday", "week_start", cfg.Report.WeekStart)
		weekStart = time.Sunday
	}
	return report.Settings{
		WeekStart: weekStart,
		Company:   cfg.Report.CompanyName,
		Currency:  cfg.Report.Currency,
	}
}

// reportLocation resolves the report time zone. An empty or unknown name
// falls back to UTC.
func reportLocation(cfg *config.Config) *time.Location {
	if cfg.Report.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		slog.Warn("Unknown report timezone, using UTC", "timezone", cfg.Report.Timezone, "error", err)
		return time.UTC
	}
	return loc
}
