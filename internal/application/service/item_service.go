package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ItemService handles stock item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name          string
	Code          string
	Unit          string
	VatStatus     enum.VatStatus
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	ReorderLevel  decimal.Decimal
}

// CreateItem creates a new stock item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name == "" || input.Code == "" {
		return nil, apperror.NewBadRequestError("Name and code are required")
	}
	if input.PurchasePrice.IsNegative() || input.SalesPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := &entity.Item{
		CompanyID:     companyID,
		Name:          input.Name,
		Code:          input.Code,
		Unit:          unit,
		VatStatus:     input.VatStatus,
		Quantity:      decimal.Zero,
		PurchasePrice: input.PurchasePrice,
		SalesPrice:    input.SalesPrice,
		ReorderLevel:  input.ReorderLevel,
		IsActive:      true,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID, including its stock lots
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	Name          *string
	Unit          *string
	VatStatus     *enum.VatStatus
	PurchasePrice *decimal.Decimal
	SalesPrice    *decimal.Decimal
	ReorderLevel  *decimal.Decimal
	IsActive      *bool
}

// UpdateItem updates an item. Quantity is never set directly; it only moves
// through vouchers and stock adjustments.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.VatStatus != nil {
		item.VatStatus = *input.VatStatus
	}
	if input.PurchasePrice != nil {
		if input.PurchasePrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		item.PurchasePrice = *input.PurchasePrice
	}
	if input.SalesPrice != nil {
		if input.SalesPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		item.SalesPrice = *input.SalesPrice
	}
	if input.ReorderLevel != nil {
		item.ReorderLevel = *input.ReorderLevel
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem soft-deletes an item. Items still holding stock can only be
// deactivated so the lot history stays consistent.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if item.Quantity.IsPositive() {
		return apperror.NewBadRequestError("Item has stock on hand and can only be deactivated")
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListLots returns an item's stock lots, oldest batch first
func (s *ItemService) ListLots(ctx context.Context, id uuid.UUID) ([]entity.StockEntry, error) {
	if _, err := s.GetItem(ctx, id); err != nil {
		return nil, err
	}
	return s.itemRepo.ListLots(ctx, id)
}
