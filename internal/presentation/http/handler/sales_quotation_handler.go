package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// SalesQuotationHandler handles sales quotation HTTP requests
type SalesQuotationHandler struct {
	quotationService *service.SalesQuotationService
}

// NewSalesQuotationHandler creates a new sales quotation handler
func NewSalesQuotationHandler(quotationService *service.SalesQuotationService) *SalesQuotationHandler {
	return &SalesQuotationHandler{quotationService: quotationService}
}

// Create handles creating a sales quotation
func (h *SalesQuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AccountID          uuid.UUID          `json:"account_id" binding:"required"`
		Date               string             `json:"date"`
		VatMode            enum.VatMode       `json:"vat_mode"`
		DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
		ManualRoundOff     *decimal.Decimal   `json:"round_off"`
		Note               *string            `json:"note"`
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

	quotation, err := h.quotationService.CreateSalesQuotation(c.Request.Context(), &service.CreateSalesQuotationInput{
		UserID:             *userID,
		AccountID:          req.AccountID,
		Date:               date,
		VatMode:            req.VatMode,
		DiscountPercentage: req.DiscountPercentage,
		ManualRoundOff:     req.ManualRoundOff,
		Note:               req.Note,
		Lines:              salesLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sales quotation created successfully", quotation)
}

// List handles listing sales quotations
func (h *SalesQuotationHandler) List(c *gin.Context) {
	result, err := h.quotationService.ListSalesQuotations(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales quotations retrieved successfully", result)
}

// Get handles getting a single sales quotation
func (h *SalesQuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetSalesQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales quotation retrieved successfully", quotation)
}

// Update handles editing a sales quotation
func (h *SalesQuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		AccountID          *uuid.UUID         `json:"account_id"`
		Date               *string            `json:"date"`
		VatMode            *enum.VatMode      `json:"vat_mode"`
		DiscountPercentage *decimal.Decimal   `json:"discount_percentage"`
		ManualRoundOff     *decimal.Decimal   `json:"round_off"`
		Note               *string            `json:"note"`
		Lines              []salesLineRequest `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSalesQuotationInput{
		AccountID:          req.AccountID,
		VatMode:            req.VatMode,
		DiscountPercentage: req.DiscountPercentage,
		ManualRoundOff:     req.ManualRoundOff,
		Note:               req.Note,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}
	if req.Lines != nil {
		input.Lines = salesLines(req.Lines)
	}

	quotation, err := h.quotationService.UpdateSalesQuotation(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales quotation updated successfully", quotation)
}

// Cancel handles cancelling a sales quotation
func (h *SalesQuotationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.CancelSalesQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales quotation cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled sales quotation
func (h *SalesQuotationHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.ReactivateSalesQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales quotation reactivated successfully", nil)
}
