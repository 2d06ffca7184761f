package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"gorm.io/gorm"
)

// BillCounter is the per-(company, fiscal year, voucher type) bill number
// sequence. Value is mutated only through an atomic upsert-increment executed
// inside the posting transaction, so a rolled-back voucher also rolls back its
// counter increment. Issued values are never reused.
type BillCounter struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_bill_counters_key" json:"company_id"`
	FiscalYearID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_bill_counters_key" json:"fiscal_year_id"`
	VoucherType  enum.VoucherType `gorm:"size:50;not null;uniqueIndex:ux_bill_counters_key" json:"voucher_type"`
	Value        int64            `gorm:"not null;default:0" json:"value"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new counter
func (b *BillCounter) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillCounter model
func (BillCounter) TableName() string {
	return "bill_counters"
}
