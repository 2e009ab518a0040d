// Package report contains cash book, profit and loss and dashboard use cases.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// Settings holds the presentation options shared by the report use cases.
type Settings struct {
	WeekStart time.Weekday
	Company   string
	Currency  string
}

// PeriodInput selects the reporting window. An empty Date means today.
type PeriodInput struct {
	Period string
	Date   string
}

// resolvedPeriod is a validated PeriodInput.
type resolvedPeriod struct {
	Kind      ledger.PeriodKind
	Reference civil.Date
	Range     ledger.DateRange
}

// periodResolver turns raw period input into a date range and loads the
// entries that fall into it.
type periodResolver struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	settings        Settings
}

func (r periodResolver) resolve(input PeriodInput) (resolvedPeriod, error) {
	kind, err := ledger.ParsePeriodKind(input.Period)
	if err != nil {
		return resolvedPeriod{}, err
	}

	ref := civil.DateOf(r.clock.Now())
	if strings.TrimSpace(input.Date) != "" {
		ref, err = ledger.ParseDate(input.Date)
		if err != nil {
			return resolvedPeriod{}, err
		}
	}

	rng, err := ledger.ResolvePeriod(kind, ref, r.settings.WeekStart)
	if err != nil {
		return resolvedPeriod{}, err
	}

	return resolvedPeriod{Kind: kind, Reference: ref, Range: rng}, nil
}

// entries loads every transaction in creation order and keeps those inside rng.
func (r periodResolver) entries(ctx context.Context, rng ledger.DateRange) ([]ledger.Entry, error) {
	transactions, err := r.transactionRepo.FindAll(ctx, adapter.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return ledger.FilterByRange(ledger.FromTransactions(transactions), rng), nil
}

func (r periodResolver) header() adapter.DocumentHeader {
	return adapter.DocumentHeader{
		Company:     r.settings.Company,
		Currency:    r.settings.Currency,
		GeneratedAt: r.clock.Now(),
	}
}
