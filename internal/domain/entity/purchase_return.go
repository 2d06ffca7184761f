package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseReturn represents goods sent back to a supplier. Posting debits the
// supplier, credits purchase/VAT, and consumes stock lots oldest-batch-first.
type PurchaseReturn struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_purchase_returns_bill" json:"company_id"`
	FiscalYearID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	AccountID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	CashAccountID      *uuid.UUID       `gorm:"type:uuid" json:"cash_account_id,omitempty"`
	Date               time.Time        `gorm:"type:date;not null" json:"date"`
	BillNumber         string           `gorm:"size:100;not null;uniqueIndex:ux_purchase_returns_bill" json:"bill_number"`
	PaymentMode        enum.PaymentMode `gorm:"default:3" json:"payment_mode"`
	VatMode            enum.VatMode     `gorm:"default:0" json:"vat_mode"`
	DiscountPercentage decimal.Decimal  `gorm:"type:decimal(5,2);default:0" json:"discount_percentage"`
	SubTotal           decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount     decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxableAmount      decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"taxable_amount"`
	NonTaxableAmount   decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"non_taxable_amount"`
	VatAmount          decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"vat_amount"`
	RoundOffAmount     decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"round_off_amount"`
	TotalAmount        decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Description        string           `gorm:"size:255" json:"description"`
	IsActive           bool             `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Account Account              `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Items   []PurchaseReturnItem `gorm:"foreignKey:PurchaseReturnID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase return
func (p *PurchaseReturn) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseReturn model
func (PurchaseReturn) TableName() string {
	return "purchase_returns"
}

// PurchaseReturnItem represents a line item in a purchase return
type PurchaseReturnItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseReturnID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_return_id"`
	ItemID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Price            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Vatable          bool            `gorm:"default:true" json:"vatable"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	PurchaseReturn PurchaseReturn `gorm:"foreignKey:PurchaseReturnID" json:"-"`
	Item           Item           `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase return item
func (pr *PurchaseReturnItem) BeforeCreate(tx *gorm.DB) error {
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseReturnItem model
func (PurchaseReturnItem) TableName() string {
	return "purchase_return_items"
}
