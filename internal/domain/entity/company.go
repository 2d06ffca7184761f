package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an organization in the multitenant system. Every account,
// item, fiscal year, counter and voucher belongs to exactly one company.
type Company struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Slug      string          `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address   *string         `gorm:"type:text" json:"address,omitempty"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	PanNumber *string         `gorm:"size:50" json:"pan_number,omitempty"`
	Settings  CompanySettings `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Owner   User                `gorm:"foreignKey:OwnerID" json:"-"`
	Members []CompanyMembership `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// CompanyMembership represents a user's membership in a company
type CompanyMembership struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"company_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'member'" json:"role"` // owner, admin, member
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the CompanyMembership model
func (CompanyMembership) TableName() string {
	return "company_memberships"
}

// CompanySettings holds per-company accounting configuration
type CompanySettings struct {
	Currency   string `json:"currency,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	DateFormat string `json:"date_format,omitempty"`

	// VAT configuration. VatRate is a percentage, e.g. 13 means 13%.
	VatEnabled bool    `json:"vat_enabled"`
	VatRate    float64 `json:"vat_rate,omitempty"`
	VatLabel   string  `json:"vat_label,omitempty"`
}

// Scan implements the sql.Scanner interface for CompanySettings
func (cs *CompanySettings) Scan(value interface{}) error {
	if value == nil {
		*cs = CompanySettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CompanySettings: unsupported type")
	}

	return json.Unmarshal(bytes, cs)
}

// Value implements the driver.Valuer interface for CompanySettings
func (cs CompanySettings) Value() (driver.Value, error) {
	return json.Marshal(cs)
}

// DefaultCompanySettings returns default settings for new companies
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Currency:   "NPR",
		Timezone:   "Asia/Kathmandu",
		DateFormat: "YYYY-MM-DD",
		VatEnabled: true,
		VatRate:    13.0,
		VatLabel:   "VAT",
	}
}
