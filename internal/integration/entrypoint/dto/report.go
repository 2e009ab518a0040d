package dto

import (
	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// DateRangeResponse represents an inclusive calendar range.
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CashBookRowResponse represents one line of the cash book.
// Exactly one of Income and Expense is set.
type CashBookRowResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Income      *string `json:"income"`
	Expense     *string `json:"expense"`
	Balance     string  `json:"balance"`
}

// CashBookResponse represents the response for GET /reports/cash-book.
type CashBookResponse struct {
	Period       string                `json:"period"`
	Range        DateRangeResponse     `json:"range"`
	Rows         []CashBookRowResponse `json:"rows"`
	Totals       TotalsResponse        `json:"totals"`
	FinalBalance string                `json:"final_balance"`
}

// CategoryTotalResponse represents one category of a breakdown.
type CategoryTotalResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ProfitLossResponse represents the response for GET /reports/profit-loss.
type ProfitLossResponse struct {
	Period           string                  `json:"period"`
	Date             string                  `json:"date"`
	Range            DateRangeResponse       `json:"range"`
	Revenue          string                  `json:"revenue"`
	Costs            string                  `json:"costs"`
	Profit           string                  `json:"profit"`
	Margin           string                  `json:"margin"`
	RevenueBreakdown []CategoryTotalResponse `json:"revenue_breakdown"`
	CostBreakdown    []CategoryTotalResponse `json:"cost_breakdown"`
}

// ToCashBookResponse converts a GetCashBookOutput to a CashBookResponse DTO.
func ToCashBookResponse(output *report.GetCashBookOutput) CashBookResponse {
	response := CashBookResponse{
		Period:       string(output.Period),
		Range:        toDateRangeResponse(output.Range),
		Rows:         make([]CashBookRowResponse, 0, len(output.Rows)),
		Totals:       ToTotalsResponse(output.Totals),
		FinalBalance: Money(output.FinalBalance),
	}
	for _, row := range output.Rows {
		response.Rows = append(response.Rows, toCashBookRowResponse(row))
	}
	return response
}

// ToProfitLossResponse converts a GetProfitLossOutput to a ProfitLossResponse DTO.
func ToProfitLossResponse(output *report.GetProfitLossOutput) ProfitLossResponse {
	s := output.Summary
	return ProfitLossResponse{
		Period:           string(output.Period),
		Date:             output.Reference,
		Range:            toDateRangeResponse(output.Range),
		Revenue:          Money(s.Revenue),
		Costs:            Money(s.Costs),
		Profit:           Money(s.Profit),
		Margin:           s.MarginPercent.StringFixed(2),
		RevenueBreakdown: toCategoryTotals(s.RevenueBreakdown),
		CostBreakdown:    toCategoryTotals(s.CostBreakdown),
	}
}

func toDateRangeResponse(r ledger.DateRange) DateRangeResponse {
	return DateRangeResponse{Start: r.Start.String(), End: r.End.String()}
}

func toCashBookRowResponse(row ledger.BalanceRow) CashBookRowResponse {
	response := CashBookRowResponse{
		ID:          row.ID.String(),
		Date:        row.Date.String(),
		Category:    row.Category,
		Description: row.Description,
		Balance:     Money(row.Balance),
	}
	amount := Money(row.Amount)
	if row.Kind == entity.TransactionTypeExpense {
		response.Expense = &amount
	} else {
		response.Income = &amount
	}
	return response
}

func toCategoryTotals(totals []ledger.CategoryTotal) []CategoryTotalResponse {
	response := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		response = append(response, CategoryTotalResponse{
			Category:   t.Category,
			Amount:     Money(t.Amount),
			Count:      t.Count,
			Percentage: t.Percentage,
		})
	}
	return response
}
