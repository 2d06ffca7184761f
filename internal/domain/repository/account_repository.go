package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
)

// AccountRepository defines the interface for ledger account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Account, error)
	GetByCode(ctx context.Context, companyID uuid.UUID, code string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AccountFilterParams) ([]entity.Account, int64, error)

	// LockForPosting loads the account with a row-level write lock, serializing
	// concurrent balance-chain writers on the same account. Must be called
	// inside a transaction.
	LockForPosting(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// GetFirstByGroup returns the company's oldest active account in a group.
	// Posting uses it to resolve the sales, purchase, VAT and round-off
	// control accounts.
	GetFirstByGroup(ctx context.Context, group enum.AccountGroup) (*entity.Account, error)
}

// AccountFilterParams contains filtering parameters for account queries
type AccountFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Group      *enum.AccountGroup
	IsActive   *bool
}

// VoucherFilterParams contains the common filtering parameters shared by
// voucher listing queries
type VoucherFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	AccountID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	IsActive   *bool
}
