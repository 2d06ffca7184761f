package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/saroz96/skyforgee-new-sub011/internal/config"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.UserSettings{},

		// Tenant entities
		&entity.Company{},
		&entity.CompanyMembership{},
		&entity.FiscalYear{},
		&entity.BillCounter{},

		// Master data
		&entity.Account{},
		&entity.Item{},
		&entity.StockEntry{},

		// Ledger
		&entity.Transaction{},

		// Vouchers
		&entity.Payment{},
		&entity.Receipt{},
		&entity.SalesInvoice{},
		&entity.SalesInvoiceItem{},
		&entity.SalesQuotation{},
		&entity.SalesQuotationItem{},
		&entity.SalesReturn{},
		&entity.SalesReturnItem{},
		&entity.Purchase{},
		&entity.PurchaseItem{},
		&entity.PurchaseReturn{},
		&entity.PurchaseReturnItem{},
		&entity.StockAdjustment{},
		&entity.StockAdjustmentItem{},
		&entity.JournalVoucher{},
		&entity.JournalRow{},
		&entity.Note{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedDefaultData seeds the database with default roles and the configured
// admin user.
func SeedDefaultData(db *gorm.DB) error {
	log.Info().Msg("seeding default data")

	roleNames := []string{"admin", "accountant", "user"}
	for _, name := range roleNames {
		var existing entity.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			role := entity.Role{Name: name, GuardName: "web"}
			if err := db.Create(&role).Error; err != nil {
				log.Warn().Err(err).Str("role", name).Msg("failed to create role")
			}
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Warn().Err(err).Msg("failed to hash admin password")
			} else {
				var adminRole entity.Role
				if err := db.Where("name = ?", "admin").First(&adminRole).Error; err == nil {
					if adminName == "" {
						adminName = "Admin"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{adminRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Warn().Err(err).Msg("failed to create admin user")
					} else {
						log.Info().Str("email", adminEmail).Msg("admin user created")
					}
				}
			}
		}
	}

	log.Info().Msg("default data seeding completed")
	return nil
}
