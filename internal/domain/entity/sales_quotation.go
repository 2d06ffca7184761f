package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesQuotation represents a priced offer to a customer. It is numbered and
// carries the full monetary breakdown, but posts no ledger entries and moves
// no stock.
type SalesQuotation struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_sales_quotations_bill" json:"company_id"`
	FiscalYearID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Date               time.Time       `gorm:"type:date;not null" json:"date"`
	BillNumber         string          `gorm:"size:100;not null;uniqueIndex:ux_sales_quotations_bill" json:"bill_number"`
	VatMode            enum.VatMode    `gorm:"default:0" json:"vat_mode"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percentage"`
	SubTotal           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxableAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"taxable_amount"`
	NonTaxableAmount   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"non_taxable_amount"`
	VatAmount          decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"vat_amount"`
	RoundOffAmount     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"round_off_amount"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Note               *string         `gorm:"type:text" json:"note,omitempty"`
	IsActive           bool            `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Account Account              `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Items   []SalesQuotationItem `gorm:"foreignKey:SalesQuotationID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales quotation
func (s *SalesQuotation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesQuotation model
func (SalesQuotation) TableName() string {
	return "sales_quotations"
}

// SalesQuotationItem represents a line item in a sales quotation
type SalesQuotationItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalesQuotationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_quotation_id"`
	ItemID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Price            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Vatable          bool            `gorm:"default:true" json:"vatable"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	SalesQuotation SalesQuotation `gorm:"foreignKey:SalesQuotationID" json:"-"`
	Item           Item           `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales quotation item
func (sq *SalesQuotationItem) BeforeCreate(tx *gorm.DB) error {
	if sq.ID == uuid.Nil {
		sq.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesQuotationItem model
func (SalesQuotationItem) TableName() string {
	return "sales_quotation_items"
}
