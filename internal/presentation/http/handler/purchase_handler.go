package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// PurchaseHandler handles purchase voucher HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles creating a purchase voucher
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AccountID          uuid.UUID        `json:"account_id" binding:"required"`
		CashAccountID      *uuid.UUID       `json:"cash_account_id"`
		Date               string           `json:"date"`
		SupplierBillNumber *string          `json:"supplier_bill_number"`
		PaymentMode        enum.PaymentMode `json:"payment_mode"`
		VatMode            enum.VatMode     `json:"vat_mode"`
		DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
		ManualRoundOff     *decimal.Decimal `json:"round_off"`
		Description        string           `json:"description"`
		Lines              []struct {
			ItemID      uuid.UUID       `json:"item_id" binding:"required"`
			Quantity    decimal.Decimal `json:"quantity" binding:"required"`
			Price       decimal.Decimal `json:"price"`
			BatchNumber *string         `json:"batch_number"`
			ExpiryDate  *string         `json:"expiry_date"`
		} `json:"lines" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	lines := make([]service.PurchaseLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		line := service.PurchaseLineInput{
			ItemID:      l.ItemID,
			Quantity:    l.Quantity,
			Price:       l.Price,
			BatchNumber: l.BatchNumber,
		}
		if l.ExpiryDate != nil {
			expiry, err := time.Parse(dateLayout, *l.ExpiryDate)
			if err != nil {
				response.BadRequest(c, "Invalid expiry date")
				return
			}
			line.ExpiryDate = &expiry
		}
		lines = append(lines, line)
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		UserID:             *userID,
		AccountID:          req.AccountID,
		CashAccountID:      req.CashAccountID,
		Date:               date,
		SupplierBillNumber: req.SupplierBillNumber,
		PaymentMode:        req.PaymentMode,
		VatMode:            req.VatMode,
		DiscountPercentage: req.DiscountPercentage,
		ManualRoundOff:     req.ManualRoundOff,
		Description:        req.Description,
		Lines:              lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase created successfully", purchase)
}

// List handles listing purchase vouchers
func (h *PurchaseHandler) List(c *gin.Context) {
	result, err := h.purchaseService.ListPurchases(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles getting a single purchase voucher
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Cancel handles cancelling a purchase voucher
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.CancelPurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled purchase voucher
func (h *PurchaseHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.ReactivatePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase reactivated successfully", nil)
}
