package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	infraRepo "github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/presentation/http/dto/response"
)

// CompanyHeader carries the company slug or ID selecting the tenant for a
// request.
const CompanyHeader = "X-Company"

// CompanyMiddleware resolves the company named in the X-Company header,
// verifies the authenticated user is a member, and scopes the request
// context to it. Runs after AuthMiddleware.
func CompanyMiddleware(companyRepo repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		selector := c.GetHeader(CompanyHeader)
		if selector == "" {
			response.BadRequest(c, "X-Company header is required")
			c.Abort()
			return
		}

		ctx := c.Request.Context()

		// The header accepts either the company UUID or its slug.
		var companyID uuid.UUID
		if id, err := uuid.Parse(selector); err == nil {
			company, err := companyRepo.GetByID(ctx, id)
			if err != nil || company == nil {
				response.NotFound(c, "Company not found")
				c.Abort()
				return
			}
			companyID = company.ID
		} else {
			company, err := companyRepo.GetBySlug(ctx, selector)
			if err != nil || company == nil {
				response.NotFound(c, "Company not found")
				c.Abort()
				return
			}
			companyID = company.ID
		}

		userID := GetUserID(c)
		if userID != uuid.Nil {
			isMember, err := companyRepo.IsMember(ctx, companyID, userID)
			if err != nil {
				response.InternalServerError(c, "Failed to verify company membership")
				c.Abort()
				return
			}
			if !isMember {
				response.Forbidden(c, "Access denied to this company")
				c.Abort()
				return
			}
		}

		c.Set("company_id", companyID)
		c.Request = c.Request.WithContext(infraRepo.WithCompany(ctx, companyID))

		c.Next()
	}
}

// GetCompanyID retrieves the company ID from the gin context
func GetCompanyID(c *gin.Context) uuid.UUID {
	companyID, exists := c.Get("company_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := companyID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
