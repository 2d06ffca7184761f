package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is one ledger entry: a single debit or credit effect on one
// account, caused by a voucher. Balance is the account's running balance
// snapshot computed at write time (previous balance + debit - credit) and is
// never rewritten; corrections are posted as new entries. Canceling the
// owning voucher flips IsActive on the whole set instead of deleting rows.
type Transaction struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"company_id"`
	FiscalYearID uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	AccountID    uuid.UUID        `gorm:"type:uuid;not null;index:ix_transactions_account_date" json:"account_id"`
	Date         time.Time        `gorm:"type:date;not null;index:ix_transactions_account_date" json:"date"`
	VoucherType  enum.VoucherType `gorm:"size:50;not null;index:ix_transactions_voucher" json:"voucher_type"`
	VoucherID    uuid.UUID        `gorm:"type:uuid;not null;index:ix_transactions_voucher" json:"voucher_id"`
	BillNumber   string           `gorm:"size:100;not null" json:"bill_number"`
	Description  string           `gorm:"size:255" json:"description"`
	Debit        decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"debit"`
	Credit       decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"credit"`
	Balance      decimal.Decimal  `gorm:"type:decimal(20,2);default:0" json:"balance"`
	// Sequence is a database-assigned monotonic value used as the final
	// tie-break of the balance chain. Entries written in one posting share a
	// date and can share a created_at timestamp; the sequence cannot collide.
	Sequence int64 `gorm:"autoIncrement;uniqueIndex" json:"-"`
	IsActive bool  `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// SignedDelta returns the entry's effect on the running balance
func (t *Transaction) SignedDelta() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}
