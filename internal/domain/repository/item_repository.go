package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ItemRepository defines the interface for item and stock lot data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)

	// LockForPosting loads the item with a row-level write lock so concurrent
	// stock mutations on the same item serialize. Must be called inside a
	// transaction.
	LockForPosting(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// UpdateQuantity sets the item's aggregate stock count.
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity decimal.Decimal) error

	// Stock lots, ordered oldest batch first.
	ListLots(ctx context.Context, itemID uuid.UUID) ([]entity.StockEntry, error)
	ListLotsBySource(ctx context.Context, itemID uuid.UUID, sourceBillNumber string) ([]entity.StockEntry, error)
	CreateLot(ctx context.Context, lot *entity.StockEntry) error
	UpdateLotQuantity(ctx context.Context, lotID uuid.UUID, quantity decimal.Decimal) error
	DeleteLot(ctx context.Context, lotID uuid.UUID) error
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	IsActive   *bool
}
