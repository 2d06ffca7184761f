package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt represents money received by the company: the cash/bank account is
// debited, the party account is credited. Mirror image of Payment.
type Receipt struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_receipts_bill" json:"company_id"`
	FiscalYearID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	AccountID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	CashAccountID uuid.UUID        `gorm:"type:uuid;not null" json:"cash_account_id"`
	Date          time.Time        `gorm:"type:date;not null" json:"date"`
	BillNumber    string           `gorm:"size:100;not null;uniqueIndex:ux_receipts_bill" json:"bill_number"`
	Mode          enum.PaymentMode `gorm:"default:0" json:"mode"`
	Amount        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description   string           `gorm:"size:255" json:"description"`
	IsActive      bool             `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Account     Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	CashAccount Account `gorm:"foreignKey:CashAccountID" json:"cash_account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
