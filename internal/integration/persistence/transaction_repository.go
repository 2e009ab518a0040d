package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindAll retrieves the transactions matching the filter.
func (r *transactionRepository) FindAll(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.applyFilter(conn(ctx, r.db).Model(&model.TransactionModel{}), filter)

	if filter.NewestFirst {
		query = query.Order("date DESC, created_at DESC")
	} else {
		query = query.Order("created_at ASC, id ASC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// GetTotals calculates totals for transactions based on filter criteria.
// Amounts are summed with decimal arithmetic; SQLite keeps NUMERIC columns as REAL.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*entity.TransactionTotals, error) {
	var rows []struct {
		Type   string
		Amount decimal.Decimal
	}
	query := r.applyFilter(conn(ctx, r.db).Model(&model.TransactionModel{}), filter)
	if err := query.Select("type", "amount").Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := &entity.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = totals.IncomeTotal.Add(row.Amount)
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(row.Amount)
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	return totals, nil
}

// Update replaces an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := conn(ctx, r.db).Save(model.TransactionFromEntity(transaction))
	return result.Error
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// FindPayrollCandidates returns payroll transactions that mention both the
// employee and the period and carry exactly the given amount.
func (r *transactionRepository) FindPayrollCandidates(
	ctx context.Context,
	category string,
	employeeName string,
	period string,
	amount decimal.Decimal,
) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).
		Where("category = ?", category).
		Where("description LIKE ? ESCAPE '"+likeEscapeChar+"'", "%"+likeEscape(employeeName)+"%").
		Where("description LIKE ? ESCAPE '"+likeEscapeChar+"'", "%"+likeEscape(period)+"%").
		Order("created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var candidates []*entity.Transaction
	for i := range transactionModels {
		if transactionModels[i].Amount.Equal(amount) {
			candidates = append(candidates, transactionModels[i].ToEntity())
		}
	}
	return candidates, nil
}

func (r *transactionRepository) applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	if filter.StartDate != nil {
		query = query.Where("date >= ?", model.NewDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", model.NewDate(*filter.EndDate))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(likeEscape(filter.Search)) + "%"
		query = query.Where("LOWER(description) LIKE ? ESCAPE '"+likeEscapeChar+"'", searchPattern)
	}
	return query
}

// likeEscapeChar is the LIKE escape character. It is not a backslash so the
// same clause reads identically on Postgres and SQLite.
const likeEscapeChar = "!"

var likeEscaper = strings.NewReplacer(
	likeEscapeChar, likeEscapeChar+likeEscapeChar,
	"%", likeEscapeChar+"%",
	"_", likeEscapeChar+"_",
)

// likeEscape makes s match itself literally in a LIKE pattern.
func likeEscape(s string) string {
	return likeEscaper.Replace(s)
}
