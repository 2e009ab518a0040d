package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/usecase/payslip"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
)

// PayslipController handles payslip endpoints.
type PayslipController struct {
	listUseCase   *payslip.ListPayslipsUseCase
	getUseCase    *payslip.GetPayslipUseCase
	createUseCase *payslip.CreatePayslipUseCase
	deleteUseCase *payslip.DeletePayslipUseCase
	printUseCase  *payslip.PrintPayslipUseCase
}

// NewPayslipController creates a new payslip controller instance.
func NewPayslipController(
	listUseCase *payslip.ListPayslipsUseCase,
	getUseCase *payslip.GetPayslipUseCase,
	createUseCase *payslip.CreatePayslipUseCase,
	deleteUseCase *payslip.DeletePayslipUseCase,
	printUseCase *payslip.PrintPayslipUseCase,
) *PayslipController {
	return &PayslipController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		printUseCase:  printUseCase,
	}
}

// List handles GET /payslips requests.
func (c *PayslipController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayslipListResponse(output))
}

// Get handles GET /payslips/:id requests.
func (c *PayslipController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodePayslipNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayslipResponse(output))
}

// Create handles POST /payslips requests.
func (c *PayslipController) Create(ctx *gin.Context) {
	var req dto.CreatePayslipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingPayslipFields), err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Employee not found",
			Code:  string(domainerror.ErrCodePayslipEmployeeNotFound),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payslip.CreatePayslipInput{
		EmployeeID: employeeID,
		Period:     req.Period,
		Allowance:  orZero(req.Allowance),
		Deduction:  orZero(req.Deduction),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPayslipResponse(output))
}

// Delete handles DELETE /payslips/:id requests. The paired payroll
// transaction is removed with the payslip.
func (c *PayslipController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodePayslipNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), payslip.DeletePayslipInput{
		PayslipID: id,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.DeletePayslipResponse{Success: output.Success}
	if output.DeletedTransactionID != nil {
		txnID := output.DeletedTransactionID.String()
		response.DeletedTransactionID = &txnID
	}
	ctx.JSON(http.StatusOK, response)
}

// Print handles GET /payslips/:id/pdf requests.
func (c *PayslipController) Print(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodePayslipNotFound))
	if !ok {
		return
	}

	artifact, err := c.printUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	sendArtifact(ctx, artifact.Filename, artifact.ContentType, artifact.Body)
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
