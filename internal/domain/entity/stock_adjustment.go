package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockAdjustment represents a manual correction of stock levels. It is
// numbered like every other voucher but touches only stock: excess lines add
// fresh lots, short lines consume lots oldest-batch-first.
type StockAdjustment struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_stock_adjustments_bill" json:"company_id"`
	FiscalYearID uuid.UUID      `gorm:"type:uuid;not null;index" json:"fiscal_year_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	Date         time.Time      `gorm:"type:date;not null" json:"date"`
	BillNumber   string         `gorm:"size:100;not null;uniqueIndex:ux_stock_adjustments_bill" json:"bill_number"`
	Reason       string         `gorm:"size:255" json:"reason"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []StockAdjustmentItem `gorm:"foreignKey:StockAdjustmentID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock adjustment
func (s *StockAdjustment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockAdjustment model
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

// StockAdjustmentItem represents one adjusted item within a stock adjustment
type StockAdjustmentItem struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	StockAdjustmentID uuid.UUID           `gorm:"type:uuid;not null;index" json:"stock_adjustment_id"`
	ItemID            uuid.UUID           `gorm:"type:uuid;not null;index" json:"item_id"`
	Type              enum.AdjustmentType `gorm:"default:0" json:"type"`
	Quantity          decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"quantity"`
	UnitCost          decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"unit_cost"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	DeletedAt         gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	StockAdjustment StockAdjustment `gorm:"foreignKey:StockAdjustmentID" json:"-"`
	Item            Item            `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock adjustment item
func (sa *StockAdjustmentItem) BeforeCreate(tx *gorm.DB) error {
	if sa.ID == uuid.Nil {
		sa.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockAdjustmentItem model
func (StockAdjustmentItem) TableName() string {
	return "stock_adjustment_items"
}
