package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
)

// ReportController handles dashboard, cash book and profit/loss endpoints.
type ReportController struct {
	dashboardUseCase        *report.GetDashboardUseCase
	cashBookUseCase         *report.GetCashBookUseCase
	exportCashBookUseCase   *report.ExportCashBookUseCase
	profitLossUseCase       *report.GetProfitLossUseCase
	exportProfitLossUseCase *report.ExportProfitLossUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardUseCase,
	cashBookUseCase *report.GetCashBookUseCase,
	exportCashBookUseCase *report.ExportCashBookUseCase,
	profitLossUseCase *report.GetProfitLossUseCase,
	exportProfitLossUseCase *report.ExportProfitLossUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:        dashboardUseCase,
		cashBookUseCase:         cashBookUseCase,
		exportCashBookUseCase:   exportCashBookUseCase,
		profitLossUseCase:       profitLossUseCase,
		exportProfitLossUseCase: exportProfitLossUseCase,
	}
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// CashBook handles GET /reports/cash-book requests.
// Query parameters: period (default month), date (default today).
func (c *ReportController) CashBook(ctx *gin.Context) {
	output, err := c.cashBookUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashBookResponse(output))
}

// ExportCashBook handles GET /reports/cash-book/export requests.
// The format query parameter selects csv, xlsx or pdf (default pdf).
func (c *ReportController) ExportCashBook(ctx *gin.Context) {
	artifact, err := c.exportCashBookUseCase.Execute(ctx.Request.Context(), report.ExportCashBookInput{
		PeriodInput: periodInput(ctx),
		Format:      ctx.Query("format"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	sendArtifact(ctx, artifact.Filename, artifact.ContentType, artifact.Body)
}

// ProfitLoss handles GET /reports/profit-loss requests.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output))
}

// ExportProfitLoss handles GET /reports/profit-loss/export requests.
func (c *ReportController) ExportProfitLoss(ctx *gin.Context) {
	artifact, err := c.exportProfitLossUseCase.Execute(ctx.Request.Context(), periodInput(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}

	sendArtifact(ctx, artifact.Filename, artifact.ContentType, artifact.Body)
}

func periodInput(ctx *gin.Context) report.PeriodInput {
	return report.PeriodInput{
		Period: ctx.DefaultQuery("period", "month"),
		Date:   ctx.Query("date"),
	}
}
