package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return conn(ctx, r.db).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := conn(ctx, r.db).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	var company entity.Company
	err := conn(ctx, r.db).First(&company, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return conn(ctx, r.db).Save(company).Error
}

func (r *companyRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Company, error) {
	var companies []entity.Company
	err := conn(ctx, r.db).
		Joins("JOIN company_memberships ON company_memberships.company_id = companies.id").
		Where("company_memberships.user_id = ?", userID).
		Order("companies.name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *companyRepository) AddMember(ctx context.Context, membership *entity.CompanyMembership) error {
	return conn(ctx, r.db).Create(membership).Error
}

func (r *companyRepository) IsMember(ctx context.Context, companyID, userID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.CompanyMembership{}).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *companyRepository) ListMembers(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyMembership, error) {
	var members []entity.CompanyMembership
	err := conn(ctx, r.db).
		Preload("User").
		Where("company_id = ?", companyID).
		Find(&members).Error
	return members, err
}

func (r *companyRepository) RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error {
	return conn(ctx, r.db).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Delete(&entity.CompanyMembership{}).Error
}

type fiscalYearRepository struct {
	db *gorm.DB
}

// NewFiscalYearRepository creates a new fiscal year repository
func NewFiscalYearRepository(db *gorm.DB) domainRepo.FiscalYearRepository {
	return &fiscalYearRepository{db: db}
}

func (r *fiscalYearRepository) Create(ctx context.Context, fy *entity.FiscalYear) error {
	return conn(ctx, r.db).Create(fy).Error
}

func (r *fiscalYearRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalYear, error) {
	var fy entity.FiscalYear
	err := conn(ctx, r.db).First(&fy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &fy, err
}

func (r *fiscalYearRepository) GetActive(ctx context.Context, companyID uuid.UUID) (*entity.FiscalYear, error) {
	var fy entity.FiscalYear
	err := conn(ctx, r.db).
		Where("company_id = ? AND is_active = ?", companyID, true).
		First(&fy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &fy, err
}

func (r *fiscalYearRepository) HasAny(ctx context.Context, companyID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.FiscalYear{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *fiscalYearRepository) List(ctx context.Context, companyID uuid.UUID) ([]entity.FiscalYear, error) {
	var years []entity.FiscalYear
	err := conn(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("start_date DESC").
		Find(&years).Error
	return years, err
}

func (r *fiscalYearRepository) Update(ctx context.Context, fy *entity.FiscalYear) error {
	return conn(ctx, r.db).Save(fy).Error
}

func (r *fiscalYearRepository) DeactivateAll(ctx context.Context, companyID uuid.UUID) error {
	return conn(ctx, r.db).Model(&entity.FiscalYear{}).
		Where("company_id = ?", companyID).
		Update("is_active", false).Error
}
