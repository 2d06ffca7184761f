package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// salesLineRequest is the wire form of one invoice line
type salesLineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

func salesLines(reqs []salesLineRequest) []service.SalesLineInput {
	lines := make([]service.SalesLineInput, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, service.SalesLineInput{
			ItemID:   r.ItemID,
			Quantity: r.Quantity,
			Price:    r.Price,
		})
	}
	return lines
}

// SalesInvoiceHandler handles sales invoice HTTP requests
type SalesInvoiceHandler struct {
	invoiceService *service.SalesInvoiceService
}

// NewSalesInvoiceHandler creates a new sales invoice handler
func NewSalesInvoiceHandler(invoiceService *service.SalesInvoiceService) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{invoiceService: invoiceService}
}

// Create handles creating a sales invoice
func (h *SalesInvoiceHandler) Create(c *gin.Context) {
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

	invoice, err := h.invoiceService.CreateSalesInvoice(c.Request.Context(), &service.CreateSalesInvoiceInput{
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

	response.Created(c, "Sales invoice created successfully", invoice)
}

// List handles listing sales invoices
func (h *SalesInvoiceHandler) List(c *gin.Context) {
	result, err := h.invoiceService.ListSalesInvoices(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales invoices retrieved successfully", result)
}

// Get handles getting a single sales invoice
func (h *SalesInvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetSalesInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales invoice retrieved successfully", invoice)
}

// Update handles editing a sales invoice's header fields
func (h *SalesInvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		AccountID   *uuid.UUID `json:"account_id"`
		Date        *string    `json:"date"`
		Description *string    `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSalesInvoiceInput{
		AccountID:   req.AccountID,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}

	invoice, err := h.invoiceService.UpdateSalesInvoice(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales invoice updated successfully", invoice)
}

// Cancel handles cancelling a sales invoice
func (h *SalesInvoiceHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.CancelSalesInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales invoice cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled sales invoice
func (h *SalesInvoiceHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.ReactivateSalesInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales invoice reactivated successfully", nil)
}
