package payslip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// PrintPayslipUseCase renders a payslip as a PDF document.
type PrintPayslipUseCase struct {
	payslipRepo adapter.PayslipRepository
	renderer    adapter.ReportRenderer
	clock       adapter.Clock
	company     string
	currency    string
}

// NewPrintPayslipUseCase creates a new PrintPayslipUseCase instance.
func NewPrintPayslipUseCase(
	payslipRepo adapter.PayslipRepository,
	renderer adapter.ReportRenderer,
	clock adapter.Clock,
	company string,
	currency string,
) *PrintPayslipUseCase {
	return &PrintPayslipUseCase{
		payslipRepo: payslipRepo,
		renderer:    renderer,
		clock:       clock,
		company:     company,
		currency:    currency,
	}
}

// Execute renders the payslip with the given ID.
func (uc *PrintPayslipUseCase) Execute(ctx context.Context, id uuid.UUID) (*adapter.Artifact, error) {
	p, err := uc.payslipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find payslip")
	}

	doc := adapter.PayslipDocument{
		DocumentHeader: adapter.DocumentHeader{
			Company:     uc.company,
			Currency:    uc.currency,
			GeneratedAt: uc.clock.Now(),
		},
		EmployeeName: p.EmployeeName,
		Position:     p.Position,
		SalaryType:   string(p.SalaryType),
		Period:       p.Payslip.Period,
		BaseSalary:   p.Payslip.BaseSalary,
		Allowance:    p.Payslip.Allowance,
		Deduction:    p.Payslip.Deduction,
		NetSalary:    p.Payslip.NetSalary,
		IssuedAt:     p.Payslip.CreatedAt,
	}

	body, err := uc.renderer.RenderPayslip(ctx, doc)
	if err != nil {
		return nil, domainerror.NewPayslipError(
			domainerror.ErrCodePayslipRenderFailed,
			"failed to render payslip",
			fmt.Errorf("%w: %w", domainerror.ErrRenderFailed, err),
		)
	}

	return &adapter.Artifact{
		Filename:    fmt.Sprintf("payslip-%s-%s.pdf", fileSlug(p.EmployeeName), p.Payslip.Period),
		ContentType: adapter.ExportFormatPDF.ContentType(),
		Body:        body,
	}, nil
}
