package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// PurchaseReturnHandler handles purchase return HTTP requests
type PurchaseReturnHandler struct {
	returnService *service.PurchaseReturnService
}

// NewPurchaseReturnHandler creates a new purchase return handler
func NewPurchaseReturnHandler(returnService *service.PurchaseReturnService) *PurchaseReturnHandler {
	return &PurchaseReturnHandler{returnService: returnService}
}

// Create handles creating a purchase return
func (h *PurchaseReturnHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AccountID          uuid.UUID          `json:"account_id" binding:"required"`
		CashAccountID      *uuid.UUID         `json:"cash_account_id"`
		Date               string             `json:"date"`
		PaymentMode        enum.PaymentMode   `json:"payment_mode"`
		VatMode            enum.VatMode       `json:"vat_mode"`
		DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
		ManualRoundOff     *decimal.Decimal   `json:"round_off"`
		Description        string             `json:"description"`
		Lines              []salesLineRequest `json:"lines" binding:"required"`
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

	purchaseReturn, err := h.returnService.CreatePurchaseReturn(c.Request.Context(), &service.CreatePurchaseReturnInput{
		UserID:             *userID,
		AccountID:          req.AccountID,
		CashAccountID:      req.CashAccountID,
		Date:               date,
		PaymentMode:        req.PaymentMode,
		VatMode:            req.VatMode,
		DiscountPercentage: req.DiscountPercentage,
		ManualRoundOff:     req.ManualRoundOff,
		Description:        req.Description,
		Lines:              salesLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase return created successfully", purchaseReturn)
}

// List handles listing purchase returns
func (h *PurchaseReturnHandler) List(c *gin.Context) {
	result, err := h.returnService.ListPurchaseReturns(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase returns retrieved successfully", result)
}

// Get handles getting a single purchase return
func (h *PurchaseReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase return ID")
		return
	}

	purchaseReturn, err := h.returnService.GetPurchaseReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase return retrieved successfully", purchaseReturn)
}

// Cancel handles cancelling a purchase return
func (h *PurchaseReturnHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase return ID")
		return
	}

	if err := h.returnService.CancelPurchaseReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase return cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled purchase return
func (h *PurchaseReturnHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase return ID")
		return
	}

	if err := h.returnService.ReactivatePurchaseReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase return reactivated successfully", nil)
}
