package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Note represents a debit note or a credit note: a single-amount pair of
// ledger effects between two accounts. Kind is VoucherTypeDebitNote or
// VoucherTypeCreditNote and also drives bill numbering.
type Note struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_notes_bill" json:"company_id"`
	FiscalYearID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	Kind            enum.VoucherType `gorm:"size:50;not null" json:"kind"`
	DebitAccountID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"debit_account_id"`
	CreditAccountID uuid.UUID        `gorm:"type:uuid;not null;index" json:"credit_account_id"`
	Date            time.Time        `gorm:"type:date;not null" json:"date"`
	BillNumber      string           `gorm:"size:100;not null;uniqueIndex:ux_notes_bill" json:"bill_number"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string           `gorm:"size:255" json:"description"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	DebitAccount  Account `gorm:"foreignKey:DebitAccountID" json:"debit_account,omitempty"`
	CreditAccount Account `gorm:"foreignKey:CreditAccountID" json:"credit_account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new note
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Note model
func (Note) TableName() string {
	return "notes"
}
