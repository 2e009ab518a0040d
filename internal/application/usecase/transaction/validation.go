// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
)

const (
	// MaxCategoryLength is the maximum allowed length for category labels.
	MaxCategoryLength = 255
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 1000
)

// fields is the user-supplied part of a transaction.
type fields struct {
	Date        civil.Date
	Category    string
	Description string
	Amount      *decimal.Decimal
	Type        entity.TransactionType
}

// validate checks and normalizes the fields in place.
func (f *fields) validate() error {
	f.Category = strings.TrimSpace(f.Category)
	f.Description = strings.TrimSpace(f.Description)

	if !f.Date.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a valid calendar date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if f.Category == "" || utf8.RuneCountInString(f.Category) > MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category must be between 1 and %d characters", MaxCategoryLength),
			domainerror.ErrInvalidCategory,
		)
	}

	if f.Description == "" || utf8.RuneCountInString(f.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDescription,
			fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
			domainerror.ErrInvalidDescription,
		)
	}

	if f.Amount == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"amount is required",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if f.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !ledger.IsMoney(*f.Amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount must have at most %d decimal places and %d integer digits", ledger.MoneyScale, ledger.MoneyIntegerDigits),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !f.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	return nil
}
