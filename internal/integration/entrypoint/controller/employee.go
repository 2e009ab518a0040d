package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cashbook/backend/internal/application/usecase/employee"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
)

// EmployeeController handles employee endpoints.
type EmployeeController struct {
	listUseCase   *employee.ListEmployeesUseCase
	getUseCase    *employee.GetEmployeeUseCase
	createUseCase *employee.CreateEmployeeUseCase
	updateUseCase *employee.UpdateEmployeeUseCase
	deleteUseCase *employee.DeleteEmployeeUseCase
}

// NewEmployeeController creates a new employee controller instance.
func NewEmployeeController(
	listUseCase *employee.ListEmployeesUseCase,
	getUseCase *employee.GetEmployeeUseCase,
	createUseCase *employee.CreateEmployeeUseCase,
	updateUseCase *employee.UpdateEmployeeUseCase,
	deleteUseCase *employee.DeleteEmployeeUseCase,
) *EmployeeController {
	return &EmployeeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /employees requests.
func (c *EmployeeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeListResponse(output))
}

// Get handles GET /employees/:id requests.
func (c *EmployeeController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeEmployeeNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(output))
}

// Create handles POST /employees requests.
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingEmployeeData), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), employee.CreateEmployeeInput{
		Name:       req.Name,
		Position:   req.Position,
		SalaryType: entity.SalaryType(strings.ToLower(req.SalaryType)),
		BaseSalary: req.BaseSalary,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmployeeResponse(output))
}

// Update handles PUT /employees/:id requests.
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeEmployeeNotFound))
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingEmployeeData), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), employee.UpdateEmployeeInput{
		EmployeeID: id,
		Name:       req.Name,
		Position:   req.Position,
		SalaryType: entity.SalaryType(strings.ToLower(req.SalaryType)),
		BaseSalary: req.BaseSalary,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(output))
}

// Delete handles DELETE /employees/:id requests.
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeEmployeeNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), employee.DeleteEmployeeInput{
		EmployeeID: id,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteEmployeeResponse{
		Success:             output.Success,
		DeletedPayslips:     output.DeletedPayslips,
		DeletedTransactions: output.DeletedTransactions,
	})
}
