package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
)

// CompanyRepository defines the interface for company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Company, error)

	AddMember(ctx context.Context, membership *entity.CompanyMembership) error
	IsMember(ctx context.Context, companyID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyMembership, error)
	RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error
}

// FiscalYearRepository defines the interface for fiscal year data operations
type FiscalYearRepository interface {
	Create(ctx context.Context, fy *entity.FiscalYear) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalYear, error)
	// GetActive returns the company's active fiscal year, nil when none is
	// active. HasAny distinguishes "no active period" from "no period at all".
	GetActive(ctx context.Context, companyID uuid.UUID) (*entity.FiscalYear, error)
	HasAny(ctx context.Context, companyID uuid.UUID) (bool, error)
	List(ctx context.Context, companyID uuid.UUID) ([]entity.FiscalYear, error)
	Update(ctx context.Context, fy *entity.FiscalYear) error
	DeactivateAll(ctx context.Context, companyID uuid.UUID) error
}
