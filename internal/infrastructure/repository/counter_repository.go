package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type billCounterRepository struct {
	db *gorm.DB
}

// NewBillCounterRepository creates a new bill counter repository
func NewBillCounterRepository(db *gorm.DB) domainRepo.BillCounterRepository {
	return &billCounterRepository{db: db}
}

// Increment performs the atomic increment-or-create through the database's
// native upsert, never as read-then-write in application code. Running it on
// the ambient transaction ties the increment to the voucher write it numbers.
func (r *billCounterRepository) Increment(ctx context.Context, companyID, fiscalYearID uuid.UUID, voucherType enum.VoucherType) (int64, error) {
	counter := entity.BillCounter{
		CompanyID:    companyID,
		FiscalYearID: fiscalYearID,
		VoucherType:  voucherType,
		Value:        1,
	}

	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"},
				{Name: "fiscal_year_id"},
				{Name: "voucher_type"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value": gorm.Expr("bill_counters.value + 1"),
			}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "value"}}}).
		Create(&counter).Error
	if err != nil {
		return 0, err
	}

	return counter.Value, nil
}

func (r *billCounterRepository) Current(ctx context.Context, companyID, fiscalYearID uuid.UUID, voucherType enum.VoucherType) (int64, error) {
	var counter entity.BillCounter
	err := conn(ctx, r.db).
		Where("company_id = ? AND fiscal_year_id = ? AND voucher_type = ?", companyID, fiscalYearID, voucherType).
		First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}
