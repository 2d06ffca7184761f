package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// ReceiptHandler handles receipt voucher HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create handles creating a receipt voucher
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AccountID     uuid.UUID        `json:"account_id" binding:"required"`
		CashAccountID uuid.UUID        `json:"cash_account_id" binding:"required"`
		Date          string           `json:"date"`
		Mode          enum.PaymentMode `json:"mode"`
		Amount        decimal.Decimal  `json:"amount" binding:"required"`
		Description   string           `json:"description"`
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

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		UserID:        *userID,
		AccountID:     req.AccountID,
		CashAccountID: req.CashAccountID,
		Date:          date,
		Mode:          req.Mode,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// List handles listing receipt vouchers
func (h *ReceiptHandler) List(c *gin.Context) {
	result, err := h.receiptService.ListReceipts(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles getting a single receipt voucher
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Update handles editing a receipt voucher
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req struct {
		AccountID     *uuid.UUID        `json:"account_id"`
		CashAccountID *uuid.UUID        `json:"cash_account_id"`
		Date          *string           `json:"date"`
		Mode          *enum.PaymentMode `json:"mode"`
		Amount        *decimal.Decimal  `json:"amount"`
		Description   *string           `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateReceiptInput{
		AccountID:     req.AccountID,
		CashAccountID: req.CashAccountID,
		Mode:          req.Mode,
		Amount:        req.Amount,
		Description:   req.Description,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", receipt)
}

// Cancel handles cancelling a receipt voucher
func (h *ReceiptHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.CancelReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled receipt voucher
func (h *ReceiptHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.ReactivateReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reactivated successfully", nil)
}
