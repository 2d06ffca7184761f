package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/application/service"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/middleware"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles creating a company
func (h *CompanyHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name      string  `json:"name" binding:"required"`
		Address   *string `json:"address"`
		Phone     *string `json:"phone"`
		PanNumber *string `json:"pan_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), *userID, &service.CreateCompanyInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		PanNumber: req.PanNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company created successfully", company)
}

// List handles listing the current user's companies
func (h *CompanyHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Companies retrieved successfully", companies)
}

// Get handles getting the current company
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	if companyID == uuid.Nil {
		response.BadRequest(c, "Company context required")
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company retrieved successfully", company)
}

// Update handles updating the current company
func (h *CompanyHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}
	companyID := middleware.GetCompanyID(c)
	if companyID == uuid.Nil {
		response.BadRequest(c, "Company context required")
		return
	}

	var req struct {
		Name      *string                 `json:"name"`
		Address   *string                 `json:"address"`
		Phone     *string                 `json:"phone"`
		PanNumber *string                 `json:"pan_number"`
		Settings  *entity.CompanySettings `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, *userID, &service.UpdateCompanyInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		PanNumber: req.PanNumber,
		Settings:  req.Settings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company updated successfully", company)
}

// AddMember handles adding a member to the current company
func (h *CompanyHandler) AddMember(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	if companyID == uuid.Nil {
		response.BadRequest(c, "Company context required")
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	membership, err := h.companyService.AddMember(c.Request.Context(), companyID, req.Email, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member added successfully", membership)
}

// ListMembers handles listing the current company's members
func (h *CompanyHandler) ListMembers(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	if companyID == uuid.Nil {
		response.BadRequest(c, "Company context required")
		return
	}

	members, err := h.companyService.ListMembers(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved successfully", members)
}

// RemoveMember handles removing a member from the current company
func (h *CompanyHandler) RemoveMember(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	if companyID == uuid.Nil {
		response.BadRequest(c, "Company context required")
		return
	}

	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.companyService.RemoveMember(c.Request.Context(), companyID, memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed successfully", nil)
}
