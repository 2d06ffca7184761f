package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
)

// dateLayout is the wire format for voucher dates
const dateLayout = "2006-01-02"

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// paginationFromQuery builds pagination params from query string
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}

// voucherFilterFromQuery builds the common voucher listing filter from the
// query string: search, account_id, from/to dates and is_active.
func voucherFilterFromQuery(c *gin.Context) *repository.VoucherFilterParams {
	params := &repository.VoucherFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if accountIDStr := c.Query("account_id"); accountIDStr != "" {
		if accountID, err := uuid.Parse(accountIDStr); err == nil {
			params.AccountID = &accountID
		}
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
	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			params.IsActive = &active
		}
	}
	return params
}

// parseDate parses a voucher date, defaulting to today when empty
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().Truncate(24 * time.Hour), nil
	}
	return time.Parse(dateLayout, s)
}
