package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SalesQuotationService handles sales quotation operations. Quotations are
// numbered and priced like invoices but never touch the ledger or stock.
type SalesQuotationService struct {
	transactor    repository.Transactor
	quotationRepo repository.SalesQuotationRepository
	itemRepo      repository.ItemRepository
	fyRepo        repository.FiscalYearRepository
	companyRepo   repository.CompanyRepository
	settingsRepo  repository.SettingsRepository
	numbering     *NumberingService
}

// NewSalesQuotationService creates a new sales quotation service
func NewSalesQuotationService(
	transactor repository.Transactor,
	quotationRepo repository.SalesQuotationRepository,
	itemRepo repository.ItemRepository,
	fyRepo repository.FiscalYearRepository,
	companyRepo repository.CompanyRepository,
	settingsRepo repository.SettingsRepository,
	numbering *NumberingService,
) *SalesQuotationService {
	return &SalesQuotationService{
		transactor:    transactor,
		quotationRepo: quotationRepo,
		itemRepo:      itemRepo,
		fyRepo:        fyRepo,
		companyRepo:   companyRepo,
		settingsRepo:  settingsRepo,
		numbering:     numbering,
	}
}

// CreateSalesQuotationInput represents the create sales quotation input
type CreateSalesQuotationInput struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	Date               time.Time
	VatMode            enum.VatMode
	DiscountPercentage decimal.Decimal
	ManualRoundOff     *decimal.Decimal
	Note               *string
	Lines              []SalesLineInput
}

// CreateSalesQuotation numbers and prices a quotation.
func (s *SalesQuotationService) CreateSalesQuotation(ctx context.Context, input *CreateSalesQuotationInput) (*entity.SalesQuotation, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}
	vatRate, err := companyVatRate(ctx, s.companyRepo, companyID)
	if err != nil {
		return nil, err
	}
	autoRoundOff, err := userAutoRoundOff(ctx, s.settingsRepo, input.UserID, companyID)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveLines(ctx, s.itemRepo, input.Lines)
	if err != nil {
		return nil, err
	}
	totals, err := ComputeVoucherTotals(&VoucherTotalsInput{
		Lines:              voucherLines(resolved),
		VatMode:            input.VatMode,
		DiscountPercentage: input.DiscountPercentage,
		VatRate:            vatRate,
		AutoRoundOff:       autoRoundOff,
		ManualRoundOff:     input.ManualRoundOff,
	})
	if err != nil {
		return nil, err
	}

	var quotation *entity.SalesQuotation
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeSalesQuotation)
		if err != nil {
			return err
		}

		quotation = &entity.SalesQuotation{
			CompanyID:          companyID,
			FiscalYearID:       fy.ID,
			UserID:             input.UserID,
			AccountID:          input.AccountID,
			Date:               input.Date,
			BillNumber:         billNumber,
			VatMode:            input.VatMode,
			DiscountPercentage: input.DiscountPercentage,
			SubTotal:           totals.SubTotal,
			DiscountAmount:     totals.DiscountAmount,
			TaxableAmount:      totals.TaxableAmount,
			NonTaxableAmount:   totals.NonTaxableAmount,
			VatAmount:          totals.VatAmount,
			RoundOffAmount:     totals.RoundOffAmount,
			TotalAmount:        totals.TotalAmount,
			Note:               input.Note,
			IsActive:           true,
		}
		for _, line := range resolved {
			quotation.Items = append(quotation.Items, entity.SalesQuotationItem{
				ItemID:   line.Item.ID,
				Quantity: line.Quantity,
				Price:    line.Price,
				Amount:   line.Amount,
				Vatable:  line.Vatable,
			})
		}
		return s.quotationRepo.Create(ctx, quotation)
	})
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

// GetSalesQuotation retrieves a sales quotation by ID
func (s *SalesQuotationService) GetSalesQuotation(ctx context.Context, id uuid.UUID) (*entity.SalesQuotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Sales quotation")
	}
	return quotation, nil
}

// ListSalesQuotations lists sales quotations
func (s *SalesQuotationService) ListSalesQuotations(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.SalesQuotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateSalesQuotationInput represents the update sales quotation input.
// Lines, when present, replace the existing set wholesale.
type UpdateSalesQuotationInput struct {
	AccountID          *uuid.UUID
	Date               *time.Time
	VatMode            *enum.VatMode
	DiscountPercentage *decimal.Decimal
	ManualRoundOff     *decimal.Decimal
	Note               *string
	Lines              []SalesLineInput
}

// UpdateSalesQuotation edits a quotation. The bill number is kept; totals are
// recomputed from the resulting line set.
func (s *SalesQuotationService) UpdateSalesQuotation(ctx context.Context, id uuid.UUID, input *UpdateSalesQuotationInput) (*entity.SalesQuotation, error) {
	quotation, err := s.GetSalesQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quotation.IsActive {
		return nil, apperror.NewBadRequestError("Canceled quotation cannot be edited")
	}

	if input.AccountID != nil {
		quotation.AccountID = *input.AccountID
	}
	if input.Date != nil {
		quotation.Date = *input.Date
	}
	if input.VatMode != nil {
		quotation.VatMode = *input.VatMode
	}
	if input.DiscountPercentage != nil {
		quotation.DiscountPercentage = *input.DiscountPercentage
	}
	if input.Note != nil {
		quotation.Note = input.Note
	}

	lines := input.Lines
	if lines == nil {
		lines = make([]SalesLineInput, 0, len(quotation.Items))
		for _, it := range quotation.Items {
			lines = append(lines, SalesLineInput{ItemID: it.ItemID, Quantity: it.Quantity, Price: it.Price})
		}
	}
	resolved, err := resolveLines(ctx, s.itemRepo, lines)
	if err != nil {
		return nil, err
	}

	vatRate, err := companyVatRate(ctx, s.companyRepo, quotation.CompanyID)
	if err != nil {
		return nil, err
	}
	autoRoundOff, err := userAutoRoundOff(ctx, s.settingsRepo, quotation.UserID, quotation.CompanyID)
	if err != nil {
		return nil, err
	}
	totals, err := ComputeVoucherTotals(&VoucherTotalsInput{
		Lines:              voucherLines(resolved),
		VatMode:            quotation.VatMode,
		DiscountPercentage: quotation.DiscountPercentage,
		VatRate:            vatRate,
		AutoRoundOff:       autoRoundOff,
		ManualRoundOff:     input.ManualRoundOff,
	})
	if err != nil {
		return nil, err
	}

	quotation.SubTotal = totals.SubTotal
	quotation.DiscountAmount = totals.DiscountAmount
	quotation.TaxableAmount = totals.TaxableAmount
	quotation.NonTaxableAmount = totals.NonTaxableAmount
	quotation.VatAmount = totals.VatAmount
	quotation.RoundOffAmount = totals.RoundOffAmount
	quotation.TotalAmount = totals.TotalAmount

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if input.Lines != nil {
			items := make([]entity.SalesQuotationItem, 0, len(resolved))
			for _, line := range resolved {
				items = append(items, entity.SalesQuotationItem{
					ItemID:   line.Item.ID,
					Quantity: line.Quantity,
					Price:    line.Price,
					Amount:   line.Amount,
					Vatable:  line.Vatable,
				})
			}
			if err := s.quotationRepo.ReplaceItems(ctx, quotation.ID, items); err != nil {
				return err
			}
		}
		quotation.Items = nil
		return s.quotationRepo.Update(ctx, quotation)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSalesQuotation(ctx, id)
}

// CancelSalesQuotation soft-cancels a quotation.
func (s *SalesQuotationService) CancelSalesQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.GetSalesQuotation(ctx, id)
	if err != nil {
		return err
	}
	if !quotation.IsActive {
		return apperror.NewBadRequestError("Sales quotation is already canceled")
	}
	return s.quotationRepo.SetActive(ctx, id, false)
}

// ReactivateSalesQuotation restores a canceled quotation.
func (s *SalesQuotationService) ReactivateSalesQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.GetSalesQuotation(ctx, id)
	if err != nil {
		return err
	}
	if quotation.IsActive {
		return apperror.NewBadRequestError("Sales quotation is already active")
	}
	return s.quotationRepo.SetActive(ctx, id, true)
}
