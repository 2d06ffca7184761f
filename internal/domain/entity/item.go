package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item represents a stock item in a company's inventory. Quantity is the
// aggregate across its stock entries; the two are mutated together inside the
// posting transaction so the aggregate always equals the sum of the lots.
type Item struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_items_company_code" json:"company_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Code          string          `gorm:"size:100;not null;uniqueIndex:ux_items_company_code" json:"code"`
	Unit          string          `gorm:"size:50;default:'pcs'" json:"unit"`
	VatStatus     enum.VatStatus  `gorm:"default:0" json:"vat_status"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"quantity"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"purchase_price"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sales_price"`
	ReorderLevel  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"reorder_level"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Company      Company      `gorm:"foreignKey:CompanyID" json:"-"`
	StockEntries []StockEntry `gorm:"foreignKey:ItemID" json:"stock_entries,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// StockEntry represents one stock lot of an item: a quantity received at a
// unit cost, optionally tagged with batch and expiry. Lots are consumed
// oldest-batch-first by sales, purchase returns and short adjustments.
type StockEntry struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ItemID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"quantity"`
	UnitCost          decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"unit_cost"`
	BatchNumber       *string          `gorm:"size:100" json:"batch_number,omitempty"`
	ExpiryDate        *time.Time       `gorm:"type:date" json:"expiry_date,omitempty"`
	SourceVoucherType enum.VoucherType `gorm:"size:50" json:"source_voucher_type"`
	SourceBillNumber  string           `gorm:"size:100;index" json:"source_bill_number"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock entry
func (s *StockEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockEntry model
func (StockEntry) TableName() string {
	return "stock_entries"
}
