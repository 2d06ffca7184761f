package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesInvoice represents a sale to a customer. Posting a sales invoice
// consumes stock lots oldest-batch-first and writes ledger entries for the
// customer, sales, VAT, round-off and (for immediate settlement) cash
// accounts, in that order.
//
// TaxableAmount and NonTaxableAmount are stored post-discount; the invariant
// TotalAmount == TaxableAmount + NonTaxableAmount + VatAmount + RoundOffAmount
// holds for every active invoice.
type SalesInvoice struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:ux_sales_invoices_bill" json:"company_id"`
	FiscalYearID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	AccountID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	CashAccountID      *uuid.UUID       `gorm:"type:uuid" json:"cash_account_id,omitempty"`
	Date               time.Time        `gorm:"type:date;not null" json:"date"`
	BillNumber         string           `gorm:"size:100;not null;uniqueIndex:ux_sales_invoices_bill" json:"bill_number"`
	PaymentMode        enum.PaymentMode `gorm:"default:0" json:"payment_mode"`
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
	Account Account            `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Items   []SalesInvoiceItem `gorm:"foreignKey:SalesInvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales invoice
func (s *SalesInvoice) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesInvoice model
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// SalesInvoiceItem represents a line item in a sales invoice
type SalesInvoiceItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalesInvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_invoice_id"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Vatable        bool            `gorm:"default:true" json:"vatable"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	SalesInvoice SalesInvoice `gorm:"foreignKey:SalesInvoiceID" json:"-"`
	Item         Item         `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales invoice item
func (si *SalesInvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesInvoiceItem model
func (SalesInvoiceItem) TableName() string {
	return "sales_invoice_items"
}
