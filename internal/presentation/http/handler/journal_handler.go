package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// JournalHandler handles journal voucher HTTP requests
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Create handles creating a journal voucher
func (h *JournalHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Date      string `json:"date"`
		Narration string `json:"narration"`
		Rows      []struct {
			AccountID   uuid.UUID       `json:"account_id" binding:"required"`
			Debit       decimal.Decimal `json:"debit"`
			Credit      decimal.Decimal `json:"credit"`
			Description string          `json:"description"`
		} `json:"rows" binding:"required"`
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

	rows := make([]service.JournalRowInput, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.JournalRowInput{
			AccountID:   r.AccountID,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Description: r.Description,
		})
	}

	voucher, err := h.journalService.CreateJournalVoucher(c.Request.Context(), &service.CreateJournalVoucherInput{
		UserID:    *userID,
		Date:      date,
		Narration: req.Narration,
		Rows:      rows,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Journal voucher created successfully", voucher)
}

// List handles listing journal vouchers
func (h *JournalHandler) List(c *gin.Context) {
	result, err := h.journalService.ListJournalVouchers(c.Request.Context(), voucherFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Journal vouchers retrieved successfully", result)
}

// Get handles getting a single journal voucher
func (h *JournalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid journal voucher ID")
		return
	}

	voucher, err := h.journalService.GetJournalVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journal voucher retrieved successfully", voucher)
}

// Cancel handles cancelling a journal voucher
func (h *JournalHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid journal voucher ID")
		return
	}

	if err := h.journalService.CancelJournalVoucher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journal voucher cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled journal voucher
func (h *JournalHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid journal voucher ID")
		return
	}

	if err := h.journalService.ReactivateJournalVoucher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journal voucher reactivated successfully", nil)
}
