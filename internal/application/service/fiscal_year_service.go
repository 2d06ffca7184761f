package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
)

// FiscalYearService handles fiscal year operations
type FiscalYearService struct {
	transactor repository.Transactor
	fyRepo     repository.FiscalYearRepository
}

// NewFiscalYearService creates a new fiscal year service
func NewFiscalYearService(transactor repository.Transactor, fyRepo repository.FiscalYearRepository) *FiscalYearService {
	return &FiscalYearService{transactor: transactor, fyRepo: fyRepo}
}

// CreateFiscalYearInput represents the create fiscal year input
type CreateFiscalYearInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// BillPrefixes overrides the defaults per voucher type; omitted types
	// keep their stock prefix.
	BillPrefixes entity.BillPrefixes
	Activate     bool
}

// CreateFiscalYear creates a fiscal year for the current company. Every
// voucher type gets a bill prefix, defaults merged with caller overrides, so
// numbering never starts a period misconfigured.
func (s *FiscalYearService) CreateFiscalYear(ctx context.Context, input *CreateFiscalYearInput) (*entity.FiscalYear, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Fiscal year name is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, apperror.NewBadRequestError("End date must be after start date")
	}
	if err := ValidateBillPrefixes(input.BillPrefixes); err != nil {
		return nil, err
	}

	existing, err := s.fyRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, fy := range existing {
		if input.StartDate.Before(fy.EndDate) && fy.StartDate.Before(input.EndDate) {
			return nil, apperror.NewConflictError("Fiscal year overlaps with " + fy.Name)
		}
	}

	prefixes := entity.DefaultBillPrefixes()
	for key, prefix := range input.BillPrefixes {
		prefixes[key] = prefix
	}

	fy := &entity.FiscalYear{
		CompanyID:    companyID,
		Name:         input.Name,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		BillPrefixes: prefixes,
		IsActive:     false,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if input.Activate {
			if err := s.fyRepo.DeactivateAll(ctx, companyID); err != nil {
				return err
			}
			fy.IsActive = true
		}
		return s.fyRepo.Create(ctx, fy)
	})
	if err != nil {
		return nil, err
	}
	return fy, nil
}

// GetFiscalYear retrieves a fiscal year by ID
func (s *FiscalYearService) GetFiscalYear(ctx context.Context, id uuid.UUID) (*entity.FiscalYear, error) {
	fy, err := s.fyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, apperror.NewNotFoundError("Fiscal year")
	}
	return fy, nil
}

// ListFiscalYears lists the company's fiscal years, newest first
func (s *FiscalYearService) ListFiscalYears(ctx context.Context) ([]entity.FiscalYear, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.fyRepo.List(ctx, companyID)
}

// ActivateFiscalYear makes a fiscal year the company's active period,
// closing any other active ones in the same transaction.
func (s *FiscalYearService) ActivateFiscalYear(ctx context.Context, id uuid.UUID) (*entity.FiscalYear, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fy, err := s.GetFiscalYear(ctx, id)
	if err != nil {
		return nil, err
	}
	if fy.IsActive {
		return fy, nil
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.fyRepo.DeactivateAll(ctx, companyID); err != nil {
			return err
		}
		fy.IsActive = true
		return s.fyRepo.Update(ctx, fy)
	})
	if err != nil {
		return nil, err
	}
	return fy, nil
}

// CloseFiscalYear deactivates a fiscal year without activating another
func (s *FiscalYearService) CloseFiscalYear(ctx context.Context, id uuid.UUID) (*entity.FiscalYear, error) {
	fy, err := s.GetFiscalYear(ctx, id)
	if err != nil {
		return nil, err
	}
	if !fy.IsActive {
		return nil, apperror.NewBadRequestError("Fiscal year is not active")
	}

	fy.IsActive = false
	if err := s.fyRepo.Update(ctx, fy); err != nil {
		return nil, err
	}
	return fy, nil
}

// UpdateBillPrefixes replaces prefixes for the given voucher types. Existing
// bill numbers keep the prefix they were issued under; only future numbering
// changes.
func (s *FiscalYearService) UpdateBillPrefixes(ctx context.Context, id uuid.UUID, prefixes entity.BillPrefixes) (*entity.FiscalYear, error) {
	if len(prefixes) == 0 {
		return nil, apperror.NewBadRequestError("No prefixes supplied")
	}
	if err := ValidateBillPrefixes(prefixes); err != nil {
		return nil, err
	}

	fy, err := s.GetFiscalYear(ctx, id)
	if err != nil {
		return nil, err
	}
	if fy.BillPrefixes == nil {
		fy.BillPrefixes = entity.BillPrefixes{}
	}
	for key, prefix := range prefixes {
		fy.BillPrefixes[key] = prefix
	}

	if err := s.fyRepo.Update(ctx, fy); err != nil {
		return nil, err
	}
	return fy, nil
}
