package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a ledger account in a company's books. The running
// balance of an account lives on its ledger entries; OpeningBalance only seeds
// the chain when no entries exist yet.
type Account struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:ux_accounts_company_code" json:"company_id"`
	Name           string            `gorm:"size:255;not null" json:"name"`
	Code           string            `gorm:"size:100;not null;uniqueIndex:ux_accounts_company_code" json:"code"`
	Group          enum.AccountGroup `gorm:"default:2" json:"group"`
	OpeningBalance decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"opening_balance"`
	PanNumber      *string           `gorm:"size:50" json:"pan_number,omitempty"`
	Address        *string           `gorm:"type:text" json:"address,omitempty"`
	Phone          *string           `gorm:"size:50" json:"phone,omitempty"`
	IsActive       bool              `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
