package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("StockEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var items []entity.Item
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return conn(ctx, r.db).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Item{}, "id = ?", id).Error
}

func (r *itemRepository) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := conn(ctx, r.db).Model(&entity.Item{}).Scopes(CompanyScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.LowStock {
		query = query.Where("quantity <= reorder_level")
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

// LockForPosting takes a SELECT ... FOR UPDATE on the item row so concurrent
// stock mutations serialize per item.
func (r *itemRepository) LockForPosting(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity decimal.Decimal) error {
	return conn(ctx, r.db).Model(&entity.Item{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// ListLots returns the item's lots oldest first, which is the order the
// business rule consumes them in.
func (r *itemRepository) ListLots(ctx context.Context, itemID uuid.UUID) ([]entity.StockEntry, error) {
	var lots []entity.StockEntry
	err := conn(ctx, r.db).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&lots).Error
	return lots, err
}

func (r *itemRepository) ListLotsBySource(ctx context.Context, itemID uuid.UUID, sourceBillNumber string) ([]entity.StockEntry, error) {
	var lots []entity.StockEntry
	err := conn(ctx, r.db).
		Where("item_id = ? AND source_bill_number = ?", itemID, sourceBillNumber).
		Order("created_at ASC").
		Find(&lots).Error
	return lots, err
}

func (r *itemRepository) CreateLot(ctx context.Context, lot *entity.StockEntry) error {
	return conn(ctx, r.db).Create(lot).Error
}

func (r *itemRepository) UpdateLotQuantity(ctx context.Context, lotID uuid.UUID, quantity decimal.Decimal) error {
	return conn(ctx, r.db).Model(&entity.StockEntry{}).
		Where("id = ?", lotID).
		Update("quantity", quantity).Error
}

func (r *itemRepository) DeleteLot(ctx context.Context, lotID uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.StockEntry{}, "id = ?", lotID).Error
}
