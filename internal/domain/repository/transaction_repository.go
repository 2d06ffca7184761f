package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for ledger entry data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error

	// LatestBalance returns the running balance of the account's most recent
	// active entry, ordered by date then insertion order. The boolean reports
	// whether any entry exists; callers fall back to the account's opening
	// balance when it is false.
	LatestBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, bool, error)

	ListByAccount(ctx context.Context, accountID uuid.UUID, params *LedgerFilterParams) ([]entity.Transaction, int64, error)
	ListByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID) ([]entity.Transaction, error)
	ListByDateRange(ctx context.Context, companyID, fiscalYearID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.Transaction, int64, error)

	// SetActiveByVoucher flips the active flag on every entry of a voucher,
	// used by cancel and reactivate.
	SetActiveByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID, active bool) (int64, error)

	// DeleteByVoucher removes a voucher's entries; only used by edits, which
	// repost a full fresh set in the same transaction.
	DeleteByVoucher(ctx context.Context, voucherType enum.VoucherType, voucherID uuid.UUID) error
}

// LedgerFilterParams contains filtering parameters for ledger statements
type LedgerFilterParams struct {
	Pagination    *pagination.PaginationParams
	StartDate     *time.Time
	EndDate       *time.Time
	IncludeVoided bool
}
