// Package payslip contains payroll use cases.
package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// PayslipOutput represents a single payslip in the output.
type PayslipOutput struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	EmployeeName  string
	Position      string
	SalaryType    entity.SalaryType
	Period        string
	BaseSalary    decimal.Decimal
	Allowance     decimal.Decimal
	Deduction     decimal.Decimal
	NetSalary     decimal.Decimal
	TransactionID *uuid.UUID
	CreatedAt     time.Time
}

func toPayslipOutput(p *entity.PayslipWithEmployee) *PayslipOutput {
	return &PayslipOutput{
		ID:            p.Payslip.ID,
		EmployeeID:    p.Payslip.EmployeeID,
		EmployeeName:  p.EmployeeName,
		Position:      p.Position,
		SalaryType:    p.SalaryType,
		Period:        p.Payslip.Period,
		BaseSalary:    p.Payslip.BaseSalary,
		Allowance:     p.Payslip.Allowance,
		Deduction:     p.Payslip.Deduction,
		NetSalary:     p.Payslip.NetSalary,
		TransactionID: p.Payslip.TransactionID,
		CreatedAt:     p.Payslip.CreatedAt,
	}
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, domainerror.ErrPayslipNotFound) {
		return domainerror.NewPayslipError(
			domainerror.ErrCodePayslipNotFound,
			"payslip not found",
			domainerror.ErrPayslipNotFound,
		)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// PayrollEntry returns the kind and amount of the cash movement that pays out
// net. A negative net salary means the employee owes the business, which is
// booked as income of the absolute amount so the ledger effect stays -net.
func PayrollEntry(net decimal.Decimal) (entity.TransactionType, decimal.Decimal) {
	if net.IsNegative() {
		return entity.TransactionTypeIncome, net.Abs()
	}
	return entity.TransactionTypeExpense, net
}

// ResolvePairedTransaction finds the payroll transaction paired with a payslip.
//
// Payslips carrying a TransactionID resolve exactly; ok is false when that
// transaction no longer exists. Legacy payslips without a link are matched on
// category, description and amount, and anything other than exactly one
// candidate is reported as an ambiguous link.
func ResolvePairedTransaction(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	category string,
	payslip *entity.Payslip,
	employeeName string,
) (id uuid.UUID, ok bool, err error) {
	if payslip.TransactionID != nil {
		if _, err := transactionRepo.FindByID(ctx, *payslip.TransactionID); err != nil {
			if errors.Is(err, domainerror.ErrTransactionNotFound) {
				slog.Warn("Payslip points to a missing transaction",
					"payslipID", payslip.ID,
					"transactionID", *payslip.TransactionID,
				)
				return uuid.Nil, false, nil
			}
			return uuid.Nil, false, fmt.Errorf("failed to find payroll transaction: %w", err)
		}
		return *payslip.TransactionID, true, nil
	}

	_, amount := PayrollEntry(payslip.NetSalary)
	candidates, err := transactionRepo.FindPayrollCandidates(ctx, category, employeeName, payslip.Period, amount)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to find payroll candidates: %w", err)
	}
	if len(candidates) != 1 {
		return uuid.Nil, false, domainerror.NewPayslipError(
			domainerror.ErrCodeAmbiguousPayrollLink,
			fmt.Sprintf("found %d payroll transactions for %s period %s, expected exactly one",
				len(candidates), employeeName, payslip.Period),
			domainerror.ErrAmbiguousPayrollLink,
		)
	}
	return candidates[0].ID, true, nil
}

// fileSlug makes s safe to use inside a download filename.
func fileSlug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
