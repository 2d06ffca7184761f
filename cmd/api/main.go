package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/config"
	"github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/database"
	"github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/handler"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/routes"
	"github.com/saroz96/skyforgee-new-sub011/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	setupLogger(cfg)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	fiscalYearRepo := repository.NewFiscalYearRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	itemRepo := repository.NewItemRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	counterRepo := repository.NewBillCounterRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	reportRepo := repository.NewReportRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	salesInvoiceRepo := repository.NewSalesInvoiceRepository(db)
	salesQuotationRepo := repository.NewSalesQuotationRepository(db)
	salesReturnRepo := repository.NewSalesReturnRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchaseReturnRepo := repository.NewPurchaseReturnRepository(db)
	stockAdjustmentRepo := repository.NewStockAdjustmentRepository(db)
	journalRepo := repository.NewJournalVoucherRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize services
	numberingService := service.NewNumberingService(counterRepo)
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	companyService := service.NewCompanyService(transactor, companyRepo, userRepo)
	fiscalYearService := service.NewFiscalYearService(transactor, fiscalYearRepo)
	accountService := service.NewAccountService(accountRepo, txnRepo)
	itemService := service.NewItemService(itemRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	paymentService := service.NewPaymentService(transactor, paymentRepo, accountRepo, txnRepo, fiscalYearRepo, numberingService)
	receiptService := service.NewReceiptService(transactor, receiptRepo, accountRepo, txnRepo, fiscalYearRepo, numberingService)
	salesInvoiceService := service.NewSalesInvoiceService(transactor, salesInvoiceRepo, accountRepo, itemRepo, txnRepo, fiscalYearRepo, companyRepo, settingsRepo, numberingService)
	salesQuotationService := service.NewSalesQuotationService(transactor, salesQuotationRepo, itemRepo, fiscalYearRepo, companyRepo, settingsRepo, numberingService)
	salesReturnService := service.NewSalesReturnService(transactor, salesReturnRepo, accountRepo, itemRepo, txnRepo, fiscalYearRepo, companyRepo, settingsRepo, numberingService)
	purchaseService := service.NewPurchaseService(transactor, purchaseRepo, accountRepo, itemRepo, txnRepo, fiscalYearRepo, companyRepo, settingsRepo, numberingService)
	purchaseReturnService := service.NewPurchaseReturnService(transactor, purchaseReturnRepo, accountRepo, itemRepo, txnRepo, fiscalYearRepo, companyRepo, settingsRepo, numberingService)
	stockAdjustmentService := service.NewStockAdjustmentService(transactor, stockAdjustmentRepo, itemRepo, fiscalYearRepo, numberingService)
	journalService := service.NewJournalService(transactor, journalRepo, accountRepo, txnRepo, fiscalYearRepo, numberingService)
	noteService := service.NewNoteService(transactor, noteRepo, accountRepo, txnRepo, fiscalYearRepo, numberingService)
	reportService := service.NewReportService(txnRepo, reportRepo, fiscalYearRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Company:         handler.NewCompanyHandler(companyService),
		FiscalYear:      handler.NewFiscalYearHandler(fiscalYearService),
		Account:         handler.NewAccountHandler(accountService),
		Item:            handler.NewItemHandler(itemService),
		Settings:        handler.NewSettingsHandler(settingsService),
		Payment:         handler.NewPaymentHandler(paymentService),
		Receipt:         handler.NewReceiptHandler(receiptService),
		SalesInvoice:    handler.NewSalesInvoiceHandler(salesInvoiceService),
		SalesQuotation:  handler.NewSalesQuotationHandler(salesQuotationService),
		SalesReturn:     handler.NewSalesReturnHandler(salesReturnService),
		Purchase:        handler.NewPurchaseHandler(purchaseService),
		PurchaseReturn:  handler.NewPurchaseReturnHandler(purchaseReturnService),
		StockAdjustment: handler.NewStockAdjustmentHandler(stockAdjustmentService),
		Journal:         handler.NewJournalHandler(journalService),
		Note:            handler.NewNoteHandler(noteService),
		Report:          handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		CompanyRepo:     companyRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("name", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
