package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment voucher HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles creating a payment voucher
func (h *PaymentHandler) Create(c *gin.Context) {
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

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
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

	response.Created(c, "Payment created successfully", payment)
}

// List handles listing payment vouchers
func (h *PaymentHandler) List(c *gin.Context) {
	result, err := h.paymentService.ListPayments(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Get handles getting a single payment voucher
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Update handles editing a payment voucher
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
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

	input := &service.UpdatePaymentInput{
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

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

// Cancel handles cancelling a payment voucher
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.CancelPayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled payment voucher
func (h *PaymentHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.ReactivatePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment reactivated successfully", nil)
}
