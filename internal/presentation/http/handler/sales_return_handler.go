package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// SalesReturnHandler handles sales return HTTP requests
type SalesReturnHandler struct {
	returnService *service.SalesReturnService
}

// NewSalesReturnHandler creates a new sales return handler
func NewSalesReturnHandler(returnService *service.SalesReturnService) *SalesReturnHandler {
	return &SalesReturnHandler{returnService: returnService}
}

// Create handles creating a sales return
func (h *SalesReturnHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AccountID          uuid.UUID        `json:"account_id" binding:"required"`
		CashAccountID      *uuid.UUID       `json:"cash_account_id"`
		Date               string           `json:"date"`
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

	lines := make([]service.SalesReturnLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.SalesReturnLineInput{
			ItemID:      l.ItemID,
			Quantity:    l.Quantity,
			Price:       l.Price,
			BatchNumber: l.BatchNumber,
		})
	}

	salesReturn, err := h.returnService.CreateSalesReturn(c.Request.Context(), &service.CreateSalesReturnInput{
		UserID:             *userID,
		AccountID:          req.AccountID,
		CashAccountID:      req.CashAccountID,
		Date:               date,
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

	response.Created(c, "Sales return created successfully", salesReturn)
}

// List handles listing sales returns
func (h *SalesReturnHandler) List(c *gin.Context) {
	result, err := h.returnService.ListSalesReturns(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales returns retrieved successfully", result)
}

// Get handles getting a single sales return
func (h *SalesReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales return ID")
		return
	}

	salesReturn, err := h.returnService.GetSalesReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales return retrieved successfully", salesReturn)
}

// Cancel handles cancelling a sales return
func (h *SalesReturnHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales return ID")
		return
	}

	if err := h.returnService.CancelSalesReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales return cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled sales return
func (h *SalesReturnHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales return ID")
		return
	}

	if err := h.returnService.ReactivateSalesReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales return reactivated successfully", nil)
}
