package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"gorm.io/gorm"
)

// FiscalYear represents a company-scoped accounting period. Vouchers and bill
// counters are partitioned by it.
type FiscalYear struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Name         string         `gorm:"size:50;not null" json:"name"`
	StartDate    time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time      `gorm:"type:date;not null" json:"end_date"`
	IsActive     bool           `gorm:"default:false;index" json:"is_active"`
	BillPrefixes BillPrefixes   `gorm:"type:jsonb;serializer:json" json:"bill_prefixes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new fiscal year
func (f *FiscalYear) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FiscalYear model
func (FiscalYear) TableName() string {
	return "fiscal_years"
}

// BillPrefixes maps a voucher type key to its 4-letter bill number prefix.
// Stored as jsonb on the fiscal year so each period can renumber independently.
type BillPrefixes map[string]string

// Scan implements the sql.Scanner interface for BillPrefixes
func (bp *BillPrefixes) Scan(value interface{}) error {
	if value == nil {
		*bp = BillPrefixes{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan BillPrefixes: unsupported type")
	}

	return json.Unmarshal(bytes, bp)
}

// Value implements the driver.Valuer interface for BillPrefixes
func (bp BillPrefixes) Value() (driver.Value, error) {
	return json.Marshal(bp)
}

// Prefix returns the configured prefix for a voucher type
func (bp BillPrefixes) Prefix(vt enum.VoucherType) (string, bool) {
	p, ok := bp[string(vt)]
	return p, ok
}

// DefaultBillPrefixes returns the stock prefix for every voucher type
func DefaultBillPrefixes() BillPrefixes {
	return BillPrefixes{
		string(enum.VoucherTypeSales):           "SALE",
		string(enum.VoucherTypeSalesQuotation):  "SQTN",
		string(enum.VoucherTypeSalesReturn):     "SRTN",
		string(enum.VoucherTypePurchase):        "PRCH",
		string(enum.VoucherTypePurchaseReturn):  "PRTN",
		string(enum.VoucherTypePayment):         "PYMT",
		string(enum.VoucherTypeReceipt):         "RCPT",
		string(enum.VoucherTypeStockAdjustment): "STKA",
		string(enum.VoucherTypeDebitNote):       "DBNT",
		string(enum.VoucherTypeCreditNote):      "CRNT",
		string(enum.VoucherTypeJournalVoucher):  "JRNL",
	}
}
