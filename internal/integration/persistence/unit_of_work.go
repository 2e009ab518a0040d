package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/cashbook/backend/internal/application/adapter"
)

type txKey struct{}

// unitOfWork implements the adapter.UnitOfWork interface on top of gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a database transaction. A nested call joins the
// transaction already carried by ctx.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
