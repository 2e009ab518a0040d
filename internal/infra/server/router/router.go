// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashbook/backend/internal/integration/entrypoint/controller"
	"github.com/cashbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	employeeController    *controller.EmployeeController
	payslipController     *controller.PayslipController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	employeeController *controller.EmployeeController,
	payslipController *controller.PayslipController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		employeeController:    employeeController,
		payslipController:     payslipController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/api/v1/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Everything below requires a bearer token
		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())

		if r.transactionController != nil {
			transactions := protected.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.employeeController != nil {
			employees := protected.Group("/employees")
			{
				employees.GET("", r.employeeController.List)
				employees.POST("", r.employeeController.Create)
				employees.GET("/:id", r.employeeController.Get)
				employees.PUT("/:id", r.employeeController.Update)
				employees.DELETE("/:id", r.employeeController.Delete)
			}
		}

		if r.payslipController != nil {
			payslips := protected.Group("/payslips")
			{
				payslips.GET("", r.payslipController.List)
				payslips.POST("", r.payslipController.Create)
				payslips.GET("/:id", r.payslipController.Get)
				payslips.DELETE("/:id", r.payslipController.Delete)
				payslips.GET("/:id/pdf", r.payslipController.Print)
			}
		}

		if r.reportController != nil {
			reports := protected.Group("/reports")
			{
				reports.GET("/dashboard", r.reportController.Dashboard)
				reports.GET("/cash-book", r.reportController.CashBook)
				reports.GET("/cash-book/export", r.reportController.ExportCashBook)
				reports.GET("/profit-loss", r.reportController.ProfitLoss)
				reports.GET("/profit-loss/export", r.reportController.ExportProfitLoss)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
