package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"gorm.io/gorm"
)

// UserSettings represents per-user, per-company posting preferences
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_user_settings_scope" json:"user_id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_user_settings_scope" json:"company_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Posting preferences. AutoRoundOff snaps voucher totals to the nearest
	// whole number; it is mutually exclusive with caller-supplied round-off.
	AutoRoundOff   bool         `gorm:"default:false" json:"auto_round_off"`
	DefaultVatMode enum.VatMode `gorm:"default:0" json:"default_vat_mode"`

	// Display preferences
	Language   string `gorm:"size:10;default:'en'" json:"language"`
	DateFormat string `gorm:"size:20;default:'YYYY-MM-DD'" json:"date_format"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
