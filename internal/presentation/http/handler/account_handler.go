package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// AccountHandler handles ledger account HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create handles creating an account
func (h *AccountHandler) Create(c *gin.Context) {
	var req struct {
		Name           string           `json:"name" binding:"required"`
		Code           string           `json:"code" binding:"required"`
		Group          enum.AccountGroup `json:"group"`
		OpeningBalance decimal.Decimal  `json:"opening_balance"`
		PanNumber      *string          `json:"pan_number"`
		Address        *string          `json:"address"`
		Phone          *string          `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &service.CreateAccountInput{
		Name:           req.Name,
		Code:           req.Code,
		Group:          req.Group,
		OpeningBalance: req.OpeningBalance,
		PanNumber:      req.PanNumber,
		Address:        req.Address,
		Phone:          req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account created successfully", account)
}

// List handles listing accounts
func (h *AccountHandler) List(c *gin.Context) {
	params := &repository.AccountFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if groupStr := c.Query("group"); groupStr != "" {
		if groupInt, err := strconv.Atoi(groupStr); err == nil {
			group := enum.AccountGroup(groupInt)
			params.Group = &group
		}
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			params.IsActive = &active
		}
	}

	result, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Accounts retrieved successfully", result)
}

// Get handles getting a single account
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved successfully", account)
}

// Update handles updating an account
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req struct {
		Name           *string            `json:"name"`
		Group          *enum.AccountGroup `json:"group"`
		OpeningBalance *decimal.Decimal   `json:"opening_balance"`
		PanNumber      *string            `json:"pan_number"`
		Address        *string            `json:"address"`
		Phone          *string            `json:"phone"`
		IsActive       *bool              `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), id, &service.UpdateAccountInput{
		Name:           req.Name,
		Group:          req.Group,
		OpeningBalance: req.OpeningBalance,
		PanNumber:      req.PanNumber,
		Address:        req.Address,
		Phone:          req.Phone,
		IsActive:       req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account updated successfully", account)
}

// Delete handles deleting an account
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account deleted successfully", nil)
}

// Statement handles an account's ledger statement
func (h *AccountHandler) Statement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	params := &repository.LedgerFilterParams{
		Pagination: paginationFromQuery(c),
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(dateLayout, fromStr); err == nil {
			params.StartDate = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(dateLayout, toStr); err == nil {
			params.EndDate = &to
		}
	}
	if voidedStr := c.Query("include_voided"); voidedStr != "" {
		if voided, err := strconv.ParseBool(voidedStr); err == nil {
			params.IncludeVoided = voided
		}
	}

	statement, err := h.accountService.GetStatement(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement retrieved successfully", statement)
}
