package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return conn(ctx, r.db).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Account, error) {
	var accounts []entity.Account
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).Where("id IN ?", ids).Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) GetByCode(ctx context.Context, companyID uuid.UUID, code string) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, r.db).First(&account, "company_id = ? AND code = ?", companyID, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return conn(ctx, r.db).Save(account).Error
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Account{}, "id = ?", id).Error
}

func (r *accountRepository) List(ctx context.Context, params *domainRepo.AccountFilterParams) ([]entity.Account, int64, error) {
	var accounts []entity.Account
	var total int64

	query := conn(ctx, r.db).Model(&entity.Account{}).Scopes(CompanyScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Group != nil {
		query = query.Where("\"group\" = ?", *params.Group)
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
		Find(&accounts).Error

	return accounts, total, err
}

// LockForPosting takes a SELECT ... FOR UPDATE on the account row. Every
// balance-chain write locks its account first, so two postings touching the
// same account serialize on the row instead of racing on the latest-balance
// read.
func (r *accountRepository) LockForPosting(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetFirstByGroup(ctx context.Context, group enum.AccountGroup) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Where(`"group" = ? AND is_active = ?`, group, true).
		Order("created_at ASC").
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}
