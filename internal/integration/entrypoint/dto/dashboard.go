package dto

import (
	"github.com/cashbook/backend/internal/application/usecase/report"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// MonthTotalsResponse represents one month of the income/expense trend.
type MonthTotalsResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// DashboardResponse represents the response for GET /reports/dashboard.
type DashboardResponse struct {
	Totals             TotalsResponse        `json:"totals"`
	TransactionCount   int                   `json:"transaction_count"`
	Trend              []MonthTotalsResponse `json:"trend"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *report.GetDashboardOutput) DashboardResponse {
	response := DashboardResponse{
		Totals:             ToTotalsResponse(output.Totals),
		TransactionCount:   output.Totals.Count,
		Trend:              make([]MonthTotalsResponse, 0, len(output.Trend)),
		RecentTransactions: make([]TransactionResponse, 0, len(output.RecentTransactions)),
	}
	for _, m := range output.Trend {
		response.Trend = append(response.Trend, toMonthTotalsResponse(m))
	}
	for _, t := range output.RecentTransactions {
		response.RecentTransactions = append(response.RecentTransactions, toEntityTransactionResponse(t))
	}
	return response
}

func toMonthTotalsResponse(m ledger.MonthTotals) MonthTotalsResponse {
	return MonthTotalsResponse{
		Month:   m.Month,
		Income:  Money(m.Income),
		Expense: Money(m.Expense),
		Net:     Money(m.Net),
	}
}

func toEntityTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.String(),
		Category:    t.Category,
		Description: t.Description,
		Amount:      Money(t.Amount),
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
