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

// StockAdjustmentService handles manual stock corrections. Adjustments are
// numbered like every other voucher but post no ledger entries.
type StockAdjustmentService struct {
	transactor     repository.Transactor
	adjustmentRepo repository.StockAdjustmentRepository
	itemRepo       repository.ItemRepository
	fyRepo         repository.FiscalYearRepository
	numbering      *NumberingService
}

// NewStockAdjustmentService creates a new stock adjustment service
func NewStockAdjustmentService(
	transactor repository.Transactor,
	adjustmentRepo repository.StockAdjustmentRepository,
	itemRepo repository.ItemRepository,
	fyRepo repository.FiscalYearRepository,
	numbering *NumberingService,
) *StockAdjustmentService {
	return &StockAdjustmentService{
		transactor:     transactor,
		adjustmentRepo: adjustmentRepo,
		itemRepo:       itemRepo,
		fyRepo:         fyRepo,
		numbering:      numbering,
	}
}

// AdjustmentLineInput represents one adjusted item
type AdjustmentLineInput struct {
	ItemID   uuid.UUID
	Type     enum.AdjustmentType
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
}

// CreateStockAdjustmentInput represents the create stock adjustment input
type CreateStockAdjustmentInput struct {
	UserID uuid.UUID
	Date   time.Time
	Reason string
	Lines  []AdjustmentLineInput
}

// CreateStockAdjustment posts a stock adjustment: excess lines add fresh
// lots, short lines consume lots oldest-batch-first.
func (s *StockAdjustmentService) CreateStockAdjustment(ctx context.Context, input *CreateStockAdjustmentInput) (*entity.StockAdjustment, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Adjustment must have at least one line")
	}
	for _, l := range input.Lines {
		if !l.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid adjustment type")
		}
		if !l.Quantity.IsPositive() {
			return nil, apperror.NewBadRequestError("Adjustment quantity must be positive")
		}
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	var adjustment *entity.StockAdjustment
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeStockAdjustment)
		if err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range input.Lines {
			if line.Type == enum.AdjustmentTypeExcess {
				err = keeper.add(ctx, line.ItemID, lotInput{
					Quantity:          line.Quantity,
					UnitCost:          line.UnitCost,
					SourceVoucherType: enum.VoucherTypeStockAdjustment,
					SourceBillNumber:  billNumber,
				})
			} else {
				err = keeper.consume(ctx, line.ItemID, line.Quantity)
			}
			if err != nil {
				return err
			}
		}

		adjustment = &entity.StockAdjustment{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			UserID:       input.UserID,
			Date:         input.Date,
			BillNumber:   billNumber,
			Reason:       input.Reason,
			IsActive:     true,
		}
		for _, line := range input.Lines {
			adjustment.Items = append(adjustment.Items, entity.StockAdjustmentItem{
				ItemID:   line.ItemID,
				Type:     line.Type,
				Quantity: line.Quantity,
				UnitCost: line.UnitCost,
			})
		}
		return s.adjustmentRepo.Create(ctx, adjustment)
	})
	if err != nil {
		return nil, err
	}
	return adjustment, nil
}

// GetStockAdjustment retrieves a stock adjustment by ID
func (s *StockAdjustmentService) GetStockAdjustment(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error) {
	adjustment, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, apperror.NewNotFoundError("Stock adjustment")
	}
	return adjustment, nil
}

// ListStockAdjustments lists stock adjustments
func (s *StockAdjustmentService) ListStockAdjustments(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.StockAdjustment], error) {
	adjustments, total, err := s.adjustmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(adjustments, pag), nil
}

// CancelStockAdjustment soft-cancels an adjustment, reversing each line's
// stock effect.
func (s *StockAdjustmentService) CancelStockAdjustment(ctx context.Context, id uuid.UUID) error {
	adjustment, err := s.GetStockAdjustment(ctx, id)
	if err != nil {
		return err
	}
	if !adjustment.IsActive {
		return apperror.NewBadRequestError("Stock adjustment is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.adjustmentRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		keeper := newStockKeeper(s.itemRepo)
		for _, line := range adjustment.Items {
			var err error
			if line.Type == enum.AdjustmentTypeExcess {
				err = keeper.removeBySource(ctx, line.ItemID, line.Quantity, adjustment.BillNumber)
			} else {
				err = keeper.add(ctx, line.ItemID, lotInput{
					Quantity:          line.Quantity,
					UnitCost:          line.UnitCost,
					SourceVoucherType: enum.VoucherTypeStockAdjustment,
					SourceBillNumber:  adjustment.BillNumber,
				})
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReactivateStockAdjustment restores a canceled adjustment, replaying each
// line's stock effect.
func (s *StockAdjustmentService) ReactivateStockAdjustment(ctx context.Context, id uuid.UUID) error {
	adjustment, err := s.GetStockAdjustment(ctx, id)
	if err != nil {
		return err
	}
	if adjustment.IsActive {
		return apperror.NewBadRequestError("Stock adjustment is already active")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.adjustmentRepo.SetActive(ctx, id, true); err != nil {
			return err
		}
		keeper := newStockKeeper(s.itemRepo)
		for _, line := range adjustment.Items {
			var err error
			if line.Type == enum.AdjustmentTypeExcess {
				err = keeper.add(ctx, line.ItemID, lotInput{
					Quantity:          line.Quantity,
					UnitCost:          line.UnitCost,
					SourceVoucherType: enum.VoucherTypeStockAdjustment,
					SourceBillNumber:  adjustment.BillNumber,
				})
			} else {
				err = keeper.consume(ctx, line.ItemID, line.Quantity)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
