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

// AccountService handles ledger account operations
type AccountService struct {
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository, txnRepo repository.TransactionRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, txnRepo: txnRepo}
}

// CreateAccountInput represents the create account input
type CreateAccountInput struct {
	Name           string
	Code           string
	Group          enum.AccountGroup
	OpeningBalance decimal.Decimal
	PanNumber      *string
	Address        *string
	Phone          *string
}

// CreateAccount creates a new ledger account
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name == "" || input.Code == "" {
		return nil, apperror.NewBadRequestError("Name and code are required")
	}

	existing, err := s.accountRepo.GetByCode(ctx, companyID, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Account code already in use")
	}

	account := &entity.Account{
		CompanyID:      companyID,
		Name:           input.Name,
		Code:           input.Code,
		Group:          input.Group,
		OpeningBalance: input.OpeningBalance,
		PanNumber:      input.PanNumber,
		Address:        input.Address,
		Phone:          input.Phone,
		IsActive:       true,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// ListAccounts lists accounts
func (s *AccountService) ListAccounts(ctx context.Context, params *repository.AccountFilterParams) (*pagination.PaginatedResult[entity.Account], error) {
	accounts, total, err := s.accountRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(accounts, pag), nil
}

// UpdateAccountInput represents the update account input
type UpdateAccountInput struct {
	Name           *string
	Group          *enum.AccountGroup
	OpeningBalance *decimal.Decimal
	PanNumber      *string
	Address        *string
	Phone          *string
	IsActive       *bool
}

// UpdateAccount updates an account. The code is immutable once assigned.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Group != nil {
		account.Group = *input.Group
	}
	if input.OpeningBalance != nil {
		account.OpeningBalance = *input.OpeningBalance
	}
	if input.PanNumber != nil {
		account.PanNumber = input.PanNumber
	}
	if input.Address != nil {
		account.Address = input.Address
	}
	if input.Phone != nil {
		account.Phone = input.Phone
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount soft-deletes an account. Accounts with ledger entries can
// only be deactivated, never deleted, so their balance chains stay intact.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	_, hasEntries, err := s.txnRepo.LatestBalance(ctx, account.ID)
	if err != nil {
		return err
	}
	if hasEntries {
		return apperror.NewBadRequestError("Account has ledger entries and can only be deactivated")
	}
	return s.accountRepo.Delete(ctx, id)
}

// AccountStatement is a ledger statement for one account
type AccountStatement struct {
	Account        *entity.Account                          `json:"account"`
	OpeningBalance decimal.Decimal                          `json:"opening_balance"`
	CurrentBalance decimal.Decimal                          `json:"current_balance"`
	Entries        *pagination.PaginatedResult[entity.Transaction] `json:"entries"`
}

// GetStatement returns an account's ledger entries with its opening and
// current running balance.
func (s *AccountService) GetStatement(ctx context.Context, id uuid.UUID, params *repository.LedgerFilterParams) (*AccountStatement, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	current, found, err := s.txnRepo.LatestBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		current = account.OpeningBalance
	}

	entries, total, err := s.txnRepo.ListByAccount(ctx, id, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)

	return &AccountStatement{
		Account:        account,
		OpeningBalance: account.OpeningBalance,
		CurrentBalance: current,
		Entries:        pagination.NewPaginatedResult(entries, pag),
	}, nil
}
