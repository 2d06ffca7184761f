package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// CompanyIDKey is the context key for the current company
	CompanyIDKey ctxKey = "company_id"
	// txKey is the context key carrying an open gorm transaction
	txKey ctxKey = "gorm_tx"
)

// CompanyScope returns a GORM scope that filters by the current company.
// Applied to every query on company-scoped entities. If the company context
// is missing the scope returns no rows, which prevents accidental
// cross-company data access.
func CompanyScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		companyID, ok := ctx.Value(CompanyIDKey).(uuid.UUID)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Where("company_id = ?", companyID)
	}
}

// WithCompany adds the company ID to the context
func WithCompany(ctx context.Context, companyID uuid.UUID) context.Context {
	return context.WithValue(ctx, CompanyIDKey, companyID)
}

// GetCompanyID extracts the company ID from the context
func GetCompanyID(ctx context.Context) (uuid.UUID, bool) {
	companyID, ok := ctx.Value(CompanyIDKey).(uuid.UUID)
	return companyID, ok
}

// WithTx stores an open transaction in the context so downstream repository
// calls join it
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFrom extracts the transaction from the context, if any
func TxFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	return tx, ok
}

// conn resolves the database handle for a call: the ambient transaction when
// one is in flight, the root connection otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := TxFrom(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// gormTransactor implements repository.Transactor over gorm. The callback's
// context carries the transaction; every repository call made with it becomes
// part of the same atomic unit, and an error return rolls the whole unit back.
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by the given connection
func NewTransactor(db *gorm.DB) *gormTransactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested calls join the ambient transaction instead of opening a new one.
	if _, ok := TxFrom(ctx); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
