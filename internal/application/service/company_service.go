package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/saroz96/skyforgee-new-sub011/pkg/utils"
)

// CompanyService handles company and membership operations
type CompanyService struct {
	transactor  repository.Transactor
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(transactor repository.Transactor, companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyService {
	return &CompanyService{transactor: transactor, companyRepo: companyRepo, userRepo: userRepo}
}

// CreateCompanyInput represents the create company input
type CreateCompanyInput struct {
	Name      string
	Address   *string
	Phone     *string
	PanNumber *string
}

// CreateCompany creates a company owned by the given user. The creator is
// enrolled as an owner member in the same transaction.
func (s *CompanyService) CreateCompany(ctx context.Context, ownerID uuid.UUID, input *CreateCompanyInput) (*entity.Company, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Company name is required")
	}

	slug := utils.Slugify(input.Name)
	if slug == "" {
		return nil, apperror.NewBadRequestError("Company name must contain letters or digits")
	}
	if existing, err := s.companyRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		// Suffix a short discriminator so two companies can share a name.
		slug = fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	}

	company := &entity.Company{
		Name:      input.Name,
		Slug:      slug,
		OwnerID:   ownerID,
		Address:   input.Address,
		Phone:     input.Phone,
		PanNumber: input.PanNumber,
		Settings:  entity.DefaultCompanySettings(),
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return s.companyRepo.AddMember(ctx, &entity.CompanyMembership{
			CompanyID: company.ID,
			UserID:    ownerID,
			Role:      "owner",
		})
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// GetCompanyBySlug retrieves a company by its slug
func (s *CompanyService) GetCompanyBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	company, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// ListCompanies lists the companies a user belongs to
func (s *CompanyService) ListCompanies(ctx context.Context, userID uuid.UUID) ([]entity.Company, error) {
	return s.companyRepo.ListForUser(ctx, userID)
}

// UpdateCompanyInput represents the update company input
type UpdateCompanyInput struct {
	Name      *string
	Address   *string
	Phone     *string
	PanNumber *string
	Settings  *entity.CompanySettings
}

// UpdateCompany updates company details and settings. Only the owner may
// change settings; the slug never changes after creation.
func (s *CompanyService) UpdateCompany(ctx context.Context, id, userID uuid.UUID, input *UpdateCompanyInput) (*entity.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = input.Address
	}
	if input.Phone != nil {
		company.Phone = input.Phone
	}
	if input.PanNumber != nil {
		company.PanNumber = input.PanNumber
	}
	if input.Settings != nil {
		if company.OwnerID != userID {
			return nil, apperror.NewForbiddenError("Only the owner can change company settings")
		}
		if input.Settings.VatRate < 0 || input.Settings.VatRate > 100 {
			return nil, apperror.NewBadRequestError("VAT rate must be between 0 and 100")
		}
		company.Settings = *input.Settings
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// AddMember enrolls a user into a company
func (s *CompanyService) AddMember(ctx context.Context, companyID uuid.UUID, email, role string) (*entity.CompanyMembership, error) {
	if role != "admin" && role != "member" {
		return nil, apperror.NewBadRequestError("Role must be admin or member")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	already, err := s.companyRepo.IsMember(ctx, companyID, user.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperror.NewConflictError("User is already a member of this company")
	}

	membership := &entity.CompanyMembership{
		CompanyID: companyID,
		UserID:    user.ID,
		Role:      role,
	}
	if err := s.companyRepo.AddMember(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// ListMembers lists a company's memberships
func (s *CompanyService) ListMembers(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyMembership, error) {
	return s.companyRepo.ListMembers(ctx, companyID)
}

// RemoveMember removes a user from a company. The owner cannot be removed.
func (s *CompanyService) RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error {
	company, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if company.OwnerID == userID {
		return apperror.NewBadRequestError("The company owner cannot be removed")
	}
	return s.companyRepo.RemoveMember(ctx, companyID, userID)
}

// IsMember reports whether a user belongs to a company
func (s *CompanyService) IsMember(ctx context.Context, companyID, userID uuid.UUID) (bool, error) {
	return s.companyRepo.IsMember(ctx, companyID, userID)
}
