package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saroz96/skyforgee-new-sub011/internal/config"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/handler"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/middleware"
	"github.com/saroz96/skyforgee-new-sub011/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth            *handler.AuthHandler
	Company         *handler.CompanyHandler
	FiscalYear      *handler.FiscalYearHandler
	Account         *handler.AccountHandler
	Item            *handler.ItemHandler
	Settings        *handler.SettingsHandler
	Payment         *handler.PaymentHandler
	Receipt         *handler.ReceiptHandler
	SalesInvoice    *handler.SalesInvoiceHandler
	SalesQuotation  *handler.SalesQuotationHandler
	SalesReturn     *handler.SalesReturnHandler
	Purchase        *handler.PurchaseHandler
	PurchaseReturn  *handler.PurchaseReturnHandler
	StockAdjustment *handler.StockAdjustmentHandler
	Journal         *handler.JournalHandler
	Note            *handler.NoteHandler
	Report          *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	CompanyRepo     domainRepo.CompanyRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Authenticated but not company-scoped
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		protected.GET("/profile", h.Auth.GetProfile)
		protected.PUT("/profile", h.Auth.UpdateProfile)
		protected.PUT("/profile/password", h.Auth.ChangePassword)

		protected.POST("/companies", h.Company.Create)
		protected.GET("/companies", h.Company.List)

		// Company-scoped routes: X-Company header selects the tenant,
		// membership is enforced, and every voucher posting is rate limited
		// and replay protected per company.
		scoped := protected.Group("")
		scoped.Use(middleware.CompanyMiddleware(deps.CompanyRepo))

		rateLimiter := middleware.NewCompanyRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		scoped.Use(rateLimiter.Middleware())
		scoped.Use(middleware.Idempotency(deps.IdempotencyRepo))

		registerCompanyRoutes(scoped, h)
		registerMasterRoutes(scoped, h)
		registerVoucherRoutes(scoped, h)
		registerReportRoutes(scoped, h)
	}

	return router
}

func registerCompanyRoutes(g *gin.RouterGroup, h *Handlers) {
	g.GET("/company", h.Company.Get)
	g.PUT("/company", h.Company.Update)
	g.GET("/company/members", h.Company.ListMembers)
	g.POST("/company/members", h.Company.AddMember)
	g.DELETE("/company/members/:userId", h.Company.RemoveMember)

	g.GET("/settings", h.Settings.Get)
	g.PUT("/settings", h.Settings.Update)

	fiscalYears := g.Group("/fiscal-years")
	{
		fiscalYears.POST("", h.FiscalYear.Create)
		fiscalYears.GET("", h.FiscalYear.List)
		fiscalYears.GET("/:id", h.FiscalYear.Get)
		fiscalYears.POST("/:id/activate", h.FiscalYear.Activate)
		fiscalYears.POST("/:id/close", h.FiscalYear.Close)
		fiscalYears.PUT("/:id/prefixes", h.FiscalYear.UpdatePrefixes)
	}
}

func registerMasterRoutes(g *gin.RouterGroup, h *Handlers) {
	accounts := g.Group("/accounts")
	{
		accounts.POST("", h.Account.Create)
		accounts.GET("", h.Account.List)
		accounts.GET("/:id", h.Account.Get)
		accounts.PUT("/:id", h.Account.Update)
		accounts.DELETE("/:id", h.Account.Delete)
		accounts.GET("/:id/statement", h.Account.Statement)
	}

	items := g.Group("/items")
	{
		items.POST("", h.Item.Create)
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
		items.GET("/:id/lots", h.Item.Lots)
	}
}

func registerVoucherRoutes(g *gin.RouterGroup, h *Handlers) {
	payments := g.Group("/payments")
	{
		payments.POST("", h.Payment.Create)
		payments.GET("", h.Payment.List)
		payments.GET("/:id", h.Payment.Get)
		payments.PUT("/:id", h.Payment.Update)
		payments.POST("/:id/cancel", h.Payment.Cancel)
		payments.POST("/:id/reactivate", h.Payment.Reactivate)
	}

	receipts := g.Group("/receipts")
	{
		receipts.POST("", h.Receipt.Create)
		receipts.GET("", h.Receipt.List)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.POST("/:id/cancel", h.Receipt.Cancel)
		receipts.POST("/:id/reactivate", h.Receipt.Reactivate)
	}

	invoices := g.Group("/sales-invoices")
	{
		invoices.POST("", h.SalesInvoice.Create)
		invoices.GET("", h.SalesInvoice.List)
		invoices.GET("/:id", h.SalesInvoice.Get)
		invoices.PUT("/:id", h.SalesInvoice.Update)
		invoices.POST("/:id/cancel", h.SalesInvoice.Cancel)
		invoices.POST("/:id/reactivate", h.SalesInvoice.Reactivate)
	}

	quotations := g.Group("/sales-quotations")
	{
		quotations.POST("", h.SalesQuotation.Create)
		quotations.GET("", h.SalesQuotation.List)
		quotations.GET("/:id", h.SalesQuotation.Get)
		quotations.PUT("/:id", h.SalesQuotation.Update)
		quotations.POST("/:id/cancel", h.SalesQuotation.Cancel)
		quotations.POST("/:id/reactivate", h.SalesQuotation.Reactivate)
	}

	salesReturns := g.Group("/sales-returns")
	{
		salesReturns.POST("", h.SalesReturn.Create)
		salesReturns.GET("", h.SalesReturn.List)
		salesReturns.GET("/:id", h.SalesReturn.Get)
		salesReturns.POST("/:id/cancel", h.SalesReturn.Cancel)
		salesReturns.POST("/:id/reactivate", h.SalesReturn.Reactivate)
	}

	purchases := g.Group("/purchases")
	{
		purchases.POST("", h.Purchase.Create)
		purchases.GET("", h.Purchase.List)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.POST("/:id/cancel", h.Purchase.Cancel)
		purchases.POST("/:id/reactivate", h.Purchase.Reactivate)
	}

	purchaseReturns := g.Group("/purchase-returns")
	{
		purchaseReturns.POST("", h.PurchaseReturn.Create)
		purchaseReturns.GET("", h.PurchaseReturn.List)
		purchaseReturns.GET("/:id", h.PurchaseReturn.Get)
		purchaseReturns.POST("/:id/cancel", h.PurchaseReturn.Cancel)
		purchaseReturns.POST("/:id/reactivate", h.PurchaseReturn.Reactivate)
	}

	adjustments := g.Group("/stock-adjustments")
	{
		adjustments.POST("", h.StockAdjustment.Create)
		adjustments.GET("", h.StockAdjustment.List)
		adjustments.GET("/:id", h.StockAdjustment.Get)
		adjustments.POST("/:id/cancel", h.StockAdjustment.Cancel)
		adjustments.POST("/:id/reactivate", h.StockAdjustment.Reactivate)
	}

	journals := g.Group("/journal-vouchers")
	{
		journals.POST("", h.Journal.Create)
		journals.GET("", h.Journal.List)
		journals.GET("/:id", h.Journal.Get)
		journals.POST("/:id/cancel", h.Journal.Cancel)
		journals.POST("/:id/reactivate", h.Journal.Reactivate)
	}

	notes := g.Group("/notes")
	{
		notes.POST("", h.Note.Create)
		notes.GET("", h.Note.List)
		notes.GET("/:id", h.Note.Get)
		notes.POST("/:id/cancel", h.Note.Cancel)
		notes.POST("/:id/reactivate", h.Note.Reactivate)
	}
}

func registerReportRoutes(g *gin.RouterGroup, h *Handlers) {
	reports := g.Group("/reports")
	{
		reports.GET("/day-book", h.Report.DayBook)
		reports.GET("/vat-summary", h.Report.VatSummary)
	}
}
