package payslip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
)

// ListPayslipsUseCase handles listing payslips.
type ListPayslipsUseCase struct {
	payslipRepo adapter.PayslipRepository
}

// NewListPayslipsUseCase creates a new ListPayslipsUseCase instance.
func NewListPayslipsUseCase(payslipRepo adapter.PayslipRepository) *ListPayslipsUseCase {
	return &ListPayslipsUseCase{payslipRepo: payslipRepo}
}

// Execute returns every payslip, most recent period first.
func (uc *ListPayslipsUseCase) Execute(ctx context.Context) ([]*PayslipOutput, error) {
	payslips, err := uc.payslipRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	output := make([]*PayslipOutput, 0, len(payslips))
	for _, p := range payslips {
		output = append(output, toPayslipOutput(p))
	}
	return output, nil
}

// GetPayslipUseCase handles fetching a single payslip.
type GetPayslipUseCase struct {
	payslipRepo adapter.PayslipRepository
}

// NewGetPayslipUseCase creates a new GetPayslipUseCase instance.
func NewGetPayslipUseCase(payslipRepo adapter.PayslipRepository) *GetPayslipUseCase {
	return &GetPayslipUseCase{payslipRepo: payslipRepo}
}

// Execute returns the payslip with the given ID.
func (uc *GetPayslipUseCase) Execute(ctx context.Context, id uuid.UUID) (*PayslipOutput, error) {
	p, err := uc.payslipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find payslip")
	}
	return toPayslipOutput(p), nil
}
