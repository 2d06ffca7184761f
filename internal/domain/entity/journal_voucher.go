package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JournalVoucher represents a free-form double-entry voucher. Each row debits
// or credits exactly one account; the voucher is accepted only when total
// debits equal total credits.
type JournalVoucher struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_journal_vouchers_bill" json:"company_id"`
	FiscalYearID uuid.UUID       `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	Date         time.Time       `gorm:"type:date;not null" json:"date"`
	BillNumber   string          `gorm:"size:100;not null;uniqueIndex:ux_journal_vouchers_bill" json:"bill_number"`
	Narration    string          `gorm:"size:255" json:"narration"`
	TotalDebit   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_debit"`
	TotalCredit  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_credit"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Rows []JournalRow `gorm:"foreignKey:JournalVoucherID" json:"rows,omitempty"`
}

// BeforeCreate generates a UUID before creating a new journal voucher
func (j *JournalVoucher) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JournalVoucher model
func (JournalVoucher) TableName() string {
	return "journal_vouchers"
}

// JournalRow represents one debit or credit row of a journal voucher
type JournalRow struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	JournalVoucherID uuid.UUID       `gorm:"type:uuid;not null;index" json:"journal_voucher_id"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Debit            decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"debit"`
	Credit           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"credit"`
	Description      string          `gorm:"size:255" json:"description"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	JournalVoucher JournalVoucher `gorm:"foreignKey:JournalVoucherID" json:"-"`
	Account        Account        `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new journal row
func (r *JournalRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JournalRow model
func (JournalRow) TableName() string {
	return "journal_rows"
}
