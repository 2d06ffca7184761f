package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
)

// FiscalYearHandler handles fiscal year HTTP requests
type FiscalYearHandler struct {
	fyService *service.FiscalYearService
}

// NewFiscalYearHandler creates a new fiscal year handler
func NewFiscalYearHandler(fyService *service.FiscalYearService) *FiscalYearHandler {
	return &FiscalYearHandler{fyService: fyService}
}

// Create handles creating a fiscal year
func (h *FiscalYearHandler) Create(c *gin.Context) {
	var req struct {
		Name         string            `json:"name" binding:"required"`
		StartDate    string            `json:"start_date" binding:"required"`
		EndDate      string            `json:"end_date" binding:"required"`
		BillPrefixes map[string]string `json:"bill_prefixes"`
		Activate     bool              `json:"activate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end date")
		return
	}

	fy, err := h.fyService.CreateFiscalYear(c.Request.Context(), &service.CreateFiscalYearInput{
		Name:         req.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		BillPrefixes: entity.BillPrefixes(req.BillPrefixes),
		Activate:     req.Activate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fiscal year created successfully", fy)
}

// List handles listing fiscal years
func (h *FiscalYearHandler) List(c *gin.Context) {
	years, err := h.fyService.ListFiscalYears(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal years retrieved successfully", years)
}

// Get handles getting a single fiscal year
func (h *FiscalYearHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal year ID")
		return
	}

	fy, err := h.fyService.GetFiscalYear(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal year retrieved successfully", fy)
}

// Activate handles activating a fiscal year
func (h *FiscalYearHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal year ID")
		return
	}

	fy, err := h.fyService.ActivateFiscalYear(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal year activated successfully", fy)
}

// Close handles closing a fiscal year
func (h *FiscalYearHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal year ID")
		return
	}

	fy, err := h.fyService.CloseFiscalYear(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal year closed successfully", fy)
}

// UpdatePrefixes handles updating a fiscal year's bill prefixes
func (h *FiscalYearHandler) UpdatePrefixes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal year ID")
		return
	}

	var req struct {
		BillPrefixes map[string]string `json:"bill_prefixes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fy, err := h.fyService.UpdateBillPrefixes(c.Request.Context(), id, entity.BillPrefixes(req.BillPrefixes))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill prefixes updated successfully", fy)
}
