package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportRange parses the mandatory from/to query range
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing from date")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing to date")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// DayBook handles the day book report
func (h *ReportHandler) DayBook(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	dayBook, err := h.reportService.GetDayBook(c.Request.Context(), from, to, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day book retrieved successfully", dayBook)
}

// VatSummary handles the VAT summary report
func (h *ReportHandler) VatSummary(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}

	summary, err := h.reportService.GetVatSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VAT summary retrieved successfully", summary)
}
