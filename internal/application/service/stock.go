package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/shopspring/decimal"
)

// lotDraw records how much was taken from one lot, so a draw can be reasoned
// about or reversed.
type lotDraw struct {
	Lot      entity.StockEntry
	Quantity decimal.Decimal
}

// drawFromLots allocates a requested quantity across lots oldest first. It is
// pure: callers apply the returned draws to storage. Returns an error when
// the lots cannot cover the request.
func drawFromLots(lots []entity.StockEntry, requested decimal.Decimal) ([]lotDraw, error) {
	remaining := requested
	draws := make([]lotDraw, 0, len(lots))
	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}
		if !lot.Quantity.IsPositive() {
			continue
		}
		take := decimal.Min(lot.Quantity, remaining)
		draws = append(draws, lotDraw{Lot: lot, Quantity: take})
		remaining = remaining.Sub(take)
	}
	if remaining.IsPositive() {
		return nil, apperror.NewBadRequestError("Insufficient stock")
	}
	return draws, nil
}

// stockKeeper mutates item stock inside a posting transaction. The item row
// is locked before any lot mutation so the aggregate quantity and the lot
// rows always move together.
type stockKeeper struct {
	itemRepo repository.ItemRepository
}

func newStockKeeper(itemRepo repository.ItemRepository) *stockKeeper {
	return &stockKeeper{itemRepo: itemRepo}
}

// lotInput describes a fresh lot to add to an item.
type lotInput struct {
	Quantity          decimal.Decimal
	UnitCost          decimal.Decimal
	BatchNumber       *string
	ExpiryDate        *time.Time
	SourceVoucherType enum.VoucherType
	SourceBillNumber  string
}

// consume removes a quantity from an item's stock, draining lots oldest
// first. Fully drained lots are deleted.
func (k *stockKeeper) consume(ctx context.Context, itemID uuid.UUID, quantity decimal.Decimal) error {
	item, err := k.itemRepo.LockForPosting(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	lots, err := k.itemRepo.ListLots(ctx, itemID)
	if err != nil {
		return err
	}
	draws, err := drawFromLots(lots, quantity)
	if err != nil {
		return apperror.NewBadRequestError("Insufficient stock for item " + item.Name)
	}

	for _, d := range draws {
		left := d.Lot.Quantity.Sub(d.Quantity)
		if left.IsZero() {
			if err := k.itemRepo.DeleteLot(ctx, d.Lot.ID); err != nil {
				return err
			}
		} else {
			if err := k.itemRepo.UpdateLotQuantity(ctx, d.Lot.ID, left); err != nil {
				return err
			}
		}
	}

	return k.itemRepo.UpdateQuantity(ctx, itemID, item.Quantity.Sub(quantity))
}

// add appends a fresh lot to an item and bumps the aggregate quantity.
func (k *stockKeeper) add(ctx context.Context, itemID uuid.UUID, in lotInput) error {
	item, err := k.itemRepo.LockForPosting(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	lot := &entity.StockEntry{
		ItemID:            itemID,
		Quantity:          in.Quantity,
		UnitCost:          in.UnitCost,
		BatchNumber:       in.BatchNumber,
		ExpiryDate:        in.ExpiryDate,
		SourceVoucherType: in.SourceVoucherType,
		SourceBillNumber:  in.SourceBillNumber,
	}
	if err := k.itemRepo.CreateLot(ctx, lot); err != nil {
		return err
	}

	return k.itemRepo.UpdateQuantity(ctx, itemID, item.Quantity.Add(in.Quantity))
}

// removeBySource takes back the lots a specific voucher created, identified
// by its bill number. Quantity already consumed from those lots by later
// vouchers is drawn from the remaining lots oldest first instead.
func (k *stockKeeper) removeBySource(ctx context.Context, itemID uuid.UUID, quantity decimal.Decimal, sourceBillNumber string) error {
	item, err := k.itemRepo.LockForPosting(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	remaining := quantity
	sourceLots, err := k.itemRepo.ListLotsBySource(ctx, itemID, sourceBillNumber)
	if err != nil {
		return err
	}
	for _, lot := range sourceLots {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(lot.Quantity, remaining)
		left := lot.Quantity.Sub(take)
		if left.IsZero() {
			if err := k.itemRepo.DeleteLot(ctx, lot.ID); err != nil {
				return err
			}
		} else {
			if err := k.itemRepo.UpdateLotQuantity(ctx, lot.ID, left); err != nil {
				return err
			}
		}
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		lots, err := k.itemRepo.ListLots(ctx, itemID)
		if err != nil {
			return err
		}
		draws, err := drawFromLots(lots, remaining)
		if err != nil {
			return apperror.NewBadRequestError("Insufficient stock for item " + item.Name)
		}
		for _, d := range draws {
			left := d.Lot.Quantity.Sub(d.Quantity)
			if left.IsZero() {
				if err := k.itemRepo.DeleteLot(ctx, d.Lot.ID); err != nil {
					return err
				}
			} else {
				if err := k.itemRepo.UpdateLotQuantity(ctx, d.Lot.ID, left); err != nil {
					return err
				}
			}
		}
	}

	return k.itemRepo.UpdateQuantity(ctx, itemID, item.Quantity.Sub(quantity))
}
