package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// StockAdjustmentHandler handles stock adjustment HTTP requests
type StockAdjustmentHandler struct {
	adjustmentService *service.StockAdjustmentService
}

// NewStockAdjustmentHandler creates a new stock adjustment handler
func NewStockAdjustmentHandler(adjustmentService *service.StockAdjustmentService) *StockAdjustmentHandler {
	return &StockAdjustmentHandler{adjustmentService: adjustmentService}
}

// Create handles creating a stock adjustment
func (h *StockAdjustmentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Date   string `json:"date"`
		Reason string `json:"reason" binding:"required"`
		Lines  []struct {
			ItemID   uuid.UUID           `json:"item_id" binding:"required"`
			Type     enum.AdjustmentType `json:"type"`
			Quantity decimal.Decimal     `json:"quantity" binding:"required"`
			UnitCost decimal.Decimal     `json:"unit_cost"`
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

	lines := make([]service.AdjustmentLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.AdjustmentLineInput{
			ItemID:   l.ItemID,
			Type:     l.Type,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		})
	}

	adjustment, err := h.adjustmentService.CreateStockAdjustment(c.Request.Context(), &service.CreateStockAdjustmentInput{
		UserID: *userID,
		Date:   date,
		Reason: req.Reason,
		Lines:  lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjustment created successfully", adjustment)
}

// List handles listing stock adjustments
func (h *StockAdjustmentHandler) List(c *gin.Context) {
	result, err := h.adjustmentService.ListStockAdjustments(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock adjustments retrieved successfully", result)
}

// Get handles getting a single stock adjustment
func (h *StockAdjustmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	adjustment, err := h.adjustmentService.GetStockAdjustment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjustment retrieved successfully", adjustment)
}

// Cancel handles cancelling a stock adjustment
func (h *StockAdjustmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	if err := h.adjustmentService.CancelStockAdjustment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjustment cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled stock adjustment
func (h *StockAdjustmentHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	if err := h.adjustmentService.ReactivateStockAdjustment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjustment reactivated successfully", nil)
}
