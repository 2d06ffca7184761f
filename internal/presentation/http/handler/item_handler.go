package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// ItemHandler handles stock item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		Name          string          `json:"name" binding:"required"`
		Code          string          `json:"code" binding:"required"`
		Unit          string          `json:"unit"`
		VatStatus     enum.VatStatus  `json:"vat_status"`
		PurchasePrice decimal.Decimal `json:"purchase_price"`
		SalesPrice    decimal.Decimal `json:"sales_price"`
		ReorderLevel  decimal.Decimal `json:"reorder_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:          req.Name,
		Code:          req.Code,
		Unit:          req.Unit,
		VatStatus:     req.VatStatus,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		ReorderLevel:  req.ReorderLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	params := &repository.ItemFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if lowStr := c.Query("low_stock"); lowStr != "" {
		if low, err := strconv.ParseBool(lowStr); err == nil {
			params.LowStock = low
		}
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			params.IsActive = &active
		}
	}

	result, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Get handles getting a single item with its stock lots
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Name          *string          `json:"name"`
		Unit          *string          `json:"unit"`
		VatStatus     *enum.VatStatus  `json:"vat_status"`
		PurchasePrice *decimal.Decimal `json:"purchase_price"`
		SalesPrice    *decimal.Decimal `json:"sales_price"`
		ReorderLevel  *decimal.Decimal `json:"reorder_level"`
		IsActive      *bool            `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, &service.UpdateItemInput{
		Name:          req.Name,
		Unit:          req.Unit,
		VatStatus:     req.VatStatus,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		ReorderLevel:  req.ReorderLevel,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// Lots handles listing an item's stock lots
func (h *ItemHandler) Lots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	lots, err := h.itemService.ListLots(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock lots retrieved successfully", lots)
}
