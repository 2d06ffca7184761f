package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// NoteHandler handles debit and credit note HTTP requests
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles creating a debit or credit note
func (h *NoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Kind            enum.VoucherType `json:"kind" binding:"required"`
		DebitAccountID  uuid.UUID        `json:"debit_account_id" binding:"required"`
		CreditAccountID uuid.UUID        `json:"credit_account_id" binding:"required"`
		Date            string           `json:"date"`
		Amount          decimal.Decimal  `json:"amount" binding:"required"`
		Description     string           `json:"description"`
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

	note, err := h.noteService.CreateNote(c.Request.Context(), &service.CreateNoteInput{
		UserID:          *userID,
		Kind:            req.Kind,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Date:            date,
		Amount:          req.Amount,
		Description:     req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Note created successfully", note)
}

// List handles listing notes, optionally narrowed to one kind
func (h *NoteHandler) List(c *gin.Context) {
	params := &repository.NoteFilterParams{
		VoucherFilterParams: *voucherFilterFromQuery(c),
		Kind:                c.Query("kind"),
	}

	result, err := h.noteService.ListNotes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Notes retrieved successfully", result)
}

// Get handles getting a single note
func (h *NoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid note ID")
		return
	}

	note, err := h.noteService.GetNote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note retrieved successfully", note)
}

// Cancel handles cancelling a note
func (h *NoteHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.CancelNote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note cancelled successfully", nil)
}

// Reactivate handles reactivating a cancelled note
func (h *NoteHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.ReactivateNote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note reactivated successfully", nil)
}
