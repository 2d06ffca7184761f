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

// JournalService handles free-form journal vouchers
type JournalService struct {
	transactor  repository.Transactor
	journalRepo repository.JournalVoucherRepository
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	fyRepo      repository.FiscalYearRepository
	numbering   *NumberingService
}

// NewJournalService creates a new journal service
func NewJournalService(
	transactor repository.Transactor,
	journalRepo repository.JournalVoucherRepository,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	numbering *NumberingService,
) *JournalService {
	return &JournalService{
		transactor:  transactor,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		fyRepo:      fyRepo,
		numbering:   numbering,
	}
}

// JournalRowInput represents one debit or credit row
type JournalRowInput struct {
	AccountID   uuid.UUID
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// CreateJournalVoucherInput represents the create journal voucher input
type CreateJournalVoucherInput struct {
	UserID    uuid.UUID
	Date      time.Time
	Narration string
	Rows      []JournalRowInput
}

// CreateJournalVoucher posts a journal voucher. Each row must carry exactly
// one of debit or credit, and total debits must equal total credits.
func (s *JournalService) CreateJournalVoucher(ctx context.Context, input *CreateJournalVoucherInput) (*entity.JournalVoucher, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.Rows) < 2 {
		return nil, apperror.NewBadRequestError("Journal voucher must have at least two rows")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range input.Rows {
		if row.Debit.IsNegative() || row.Credit.IsNegative() {
			return nil, apperror.NewBadRequestError("Row amounts cannot be negative")
		}
		if row.Debit.IsPositive() == row.Credit.IsPositive() {
			return nil, apperror.NewBadRequestError("Each row must carry exactly one of debit or credit")
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, apperror.NewBadRequestError("Total debits must equal total credits")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	var voucher *entity.JournalVoucher
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeJournalVoucher)
		if err != nil {
			return err
		}

		voucher = &entity.JournalVoucher{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			UserID:       input.UserID,
			Date:         input.Date,
			BillNumber:   billNumber,
			Narration:    input.Narration,
			TotalDebit:   totalDebit,
			TotalCredit:  totalCredit,
			IsActive:     true,
		}
		for _, row := range input.Rows {
			voucher.Rows = append(voucher.Rows, entity.JournalRow{
				AccountID:   row.AccountID,
				Debit:       row.Debit,
				Credit:      row.Credit,
				Description: row.Description,
			})
		}
		if err := s.journalRepo.Create(ctx, voucher); err != nil {
			return err
		}

		entries := make([]entrySpec, 0, len(input.Rows))
		for _, row := range input.Rows {
			entries = append(entries, entrySpec{
				AccountID:   row.AccountID,
				Debit:       row.Debit,
				Credit:      row.Credit,
				Description: row.Description,
			})
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypeJournalVoucher,
			VoucherID:    voucher.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, entries)
	})
	if err != nil {
		return nil, err
	}
	return voucher, nil
}

// GetJournalVoucher retrieves a journal voucher by ID
func (s *JournalService) GetJournalVoucher(ctx context.Context, id uuid.UUID) (*entity.JournalVoucher, error) {
	voucher, err := s.journalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Journal voucher")
	}
	return voucher, nil
}

// ListJournalVouchers lists journal vouchers
func (s *JournalService) ListJournalVouchers(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.JournalVoucher], error) {
	vouchers, total, err := s.journalRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// CancelJournalVoucher soft-cancels a journal voucher and its ledger entries.
func (s *JournalService) CancelJournalVoucher(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, false)
}

// ReactivateJournalVoucher restores a canceled journal voucher.
func (s *JournalService) ReactivateJournalVoucher(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, true)
}

func (s *JournalService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	voucher, err := s.GetJournalVoucher(ctx, id)
	if err != nil {
		return err
	}
	if voucher.IsActive == active {
		if active {
			return apperror.NewBadRequestError("Journal voucher is already active")
		}
		return apperror.NewBadRequestError("Journal voucher is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.journalRepo.SetActive(ctx, id, active); err != nil {
			return err
		}
		_, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeJournalVoucher, id, active)
		return err
	})
}
