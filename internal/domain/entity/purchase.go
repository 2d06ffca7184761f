package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents goods bought from a supplier. Posting credits the
// supplier, debits purchase/VAT, and adds one stock lot per line carrying the
// line's batch and expiry metadata.
type Purchase struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_purchases_bill" json:"company_id"`
	FiscalYearID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	AccountID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	CashAccountID      *uuid.UUID       `gorm:"type:uuid" json:"cash_account_id,omitempty"`
	Date               time.Time        `gorm:"type:date;not null" json:"date"`
	BillNumber         string           `gorm:"size:100;not null;uniqueIndex:ux_purchases_bill" json:"bill_number"`
	SupplierBillNumber *string          `gorm:"size:100" json:"supplier_bill_number,omitempty"`
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
	Account Account        `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Items   []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem represents a line item in a purchase
type PurchaseItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Vatable     bool            `gorm:"default:true" json:"vatable"`
	BatchNumber *string         `gorm:"size:100" json:"batch_number,omitempty"`
	ExpiryDate  *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Item     Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase item
func (pi *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
