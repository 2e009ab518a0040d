package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/usecase/transaction"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// TransactionRequest represents the request body for transaction creation and
// full replacement. Amount accepts a JSON string or number.
type TransactionRequest struct {
	Date        string           `json:"date" binding:"required"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        string           `json:"type" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TotalsResponse represents income, expense and net totals.
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// TransactionListResponse represents the response of the transaction list.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// DeleteResponse represents the response of a delete endpoint.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// Money renders an amount as a two-place decimal string.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
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

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(output.Transactions)),
		Totals: TotalsResponse{
			Income:  Money(output.Totals.IncomeTotal),
			Expense: Money(output.Totals.ExpenseTotal),
			Net:     Money(output.Totals.NetTotal),
		},
	}
	for _, t := range output.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(t))
	}
	return response
}

// ToTotalsResponse converts ledger totals to a TotalsResponse DTO.
func ToTotalsResponse(t ledger.Totals) TotalsResponse {
	return TotalsResponse{
		Income:  Money(t.Income),
		Expense: Money(t.Expense),
		Net:     Money(t.Net),
	}
}
