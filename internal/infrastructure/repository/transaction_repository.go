package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger entry repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return conn(ctx, r.db).Create(txn).Error
}

// LatestBalance reads the newest active entry for the account. Entries posted
// on the same date resolve by insertion order, so the chain stays consistent
// even when several vouchers land on one day.
func (r *transactionRepository) LatestBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, bool, error) {
	var txn entity.Transaction
	err := conn(ctx, r.db).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Order("date DESC, sequence DESC").
		First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	return txn.Balance, true, nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, params *domainRepo.LedgerFilterParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.Transaction{}).Scopes(CompanyScope(ctx)).
		Where("account_id = ?", accountID)

	if !params.IncludeVoided {
		query = query.Where("is_active = ?", true)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date ASC, sequence ASC").
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) ListByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := conn(ctx, r.db).
		Where("voucher_type = ? AND voucher_id = ?", voucherType, voucherID).
		Order("sequence ASC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListByDateRange(ctx context.Context, companyID, fiscalYearID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.Transaction{}).
		Where("company_id = ? AND fiscal_year_id = ?", companyID, fiscalYearID).
		Where("is_active = ?", true).
		Where("date >= ? AND date <= ?", from, to)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date ASC, sequence ASC").
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) SetActiveByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID, active bool) (int64, error) {
	result := conn(ctx, r.db).Model(&entity.Transaction{}).
		Where("voucher_type = ? AND voucher_id = ?", voucherType, voucherID).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}

func (r *transactionRepository) DeleteByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID) error {
	return conn(ctx, r.db).Unscoped().
		Where("voucher_type = ? AND voucher_id = ?", voucherType, voucherID).
		Delete(&entity.Transaction{}).Error
}
