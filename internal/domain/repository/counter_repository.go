package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
)

// BillCounterRepository defines the interface for bill number sequences
type BillCounterRepository interface {
	// Increment atomically bumps the counter for the composite key and returns
	// the new value, creating the row with value 1 on first use. It must run
	// inside the same transaction as the voucher write it numbers, so that a
	// rollback also releases the increment. Committed values are never reused.
	Increment(ctx context.Context, companyID, fiscalYearID uuid.UUID, voucherType enum.VoucherType) (int64, error)

	// Current returns the last issued value without incrementing, zero if the
	// counter does not exist yet.
	Current(ctx context.Context, companyID, fiscalYearID uuid.UUID, voucherType enum.VoucherType) (int64, error)
}
