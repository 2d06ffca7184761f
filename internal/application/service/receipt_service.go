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

// ReceiptService handles receipt voucher operations
type ReceiptService struct {
	transactor  repository.Transactor
	receiptRepo repository.ReceiptRepository
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	fyRepo      repository.FiscalYearRepository
	numbering   *NumberingService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	transactor repository.Transactor,
	receiptRepo repository.ReceiptRepository,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	numbering *NumberingService,
) *ReceiptService {
	return &ReceiptService{
		transactor:  transactor,
		receiptRepo: receiptRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		fyRepo:      fyRepo,
		numbering:   numbering,
	}
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID        uuid.UUID
	AccountID     uuid.UUID
	CashAccountID uuid.UUID
	Date          time.Time
	Mode          enum.PaymentMode
	Amount        decimal.Decimal
	Description   string
}

// CreateReceipt posts a receipt voucher, the mirror image of a payment: the
// cash/bank account is debited and the party account is credited.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	if !input.Mode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment mode")
	}
	if input.AccountID == input.CashAccountID {
		return nil, apperror.NewBadRequestError("Party and cash account must differ")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	var receipt *entity.Receipt
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeReceipt)
		if err != nil {
			return err
		}

		receipt = &entity.Receipt{
			CompanyID:     companyID,
			FiscalYearID:  fy.ID,
			UserID:        input.UserID,
			AccountID:     input.AccountID,
			CashAccountID: input.CashAccountID,
			Date:          input.Date,
			BillNumber:    billNumber,
			Mode:          input.Mode,
			Amount:        input.Amount,
			Description:   input.Description,
			IsActive:      true,
		}
		if err := s.receiptRepo.Create(ctx, receipt); err != nil {
			return err
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypeReceipt,
			VoucherID:    receipt.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, []entrySpec{
			{AccountID: input.AccountID, Credit: input.Amount, Description: input.Description},
			{AccountID: input.CashAccountID, Debit: input.Amount, Description: input.Description},
		})
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists receipt vouchers
func (s *ReceiptService) ListReceipts(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// UpdateReceiptInput represents the update receipt input
type UpdateReceiptInput struct {
	AccountID     *uuid.UUID
	CashAccountID *uuid.UUID
	Date          *time.Time
	Mode          *enum.PaymentMode
	Amount        *decimal.Decimal
	Description   *string
}

// UpdateReceipt edits a receipt voucher, keeping the bill number and
// reposting the ledger entries in one transaction.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, id uuid.UUID, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if !receipt.IsActive {
		return nil, apperror.NewBadRequestError("Canceled voucher cannot be edited")
	}

	if input.AccountID != nil {
		receipt.AccountID = *input.AccountID
	}
	if input.CashAccountID != nil {
		receipt.CashAccountID = *input.CashAccountID
	}
	if input.Date != nil {
		receipt.Date = *input.Date
	}
	if input.Mode != nil {
		if !input.Mode.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment mode")
		}
		receipt.Mode = *input.Mode
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, apperror.NewBadRequestError("Amount must be positive")
		}
		receipt.Amount = *input.Amount
	}
	if input.Description != nil {
		receipt.Description = *input.Description
	}
	if receipt.AccountID == receipt.CashAccountID {
		return nil, apperror.NewBadRequestError("Party and cash account must differ")
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.receiptRepo.Update(ctx, receipt); err != nil {
			return err
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.repost(ctx, voucherRef{
			CompanyID:    receipt.CompanyID,
			FiscalYearID: receipt.FiscalYearID,
			VoucherType:  enum.VoucherTypeReceipt,
			VoucherID:    receipt.ID,
			BillNumber:   receipt.BillNumber,
			Date:         receipt.Date,
		}, []entrySpec{
			{AccountID: receipt.AccountID, Credit: receipt.Amount, Description: receipt.Description},
			{AccountID: receipt.CashAccountID, Debit: receipt.Amount, Description: receipt.Description},
		})
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// CancelReceipt soft-cancels a receipt and its ledger entries.
func (s *ReceiptService) CancelReceipt(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, false)
}

// ReactivateReceipt restores a canceled receipt and its ledger entries.
func (s *ReceiptService) ReactivateReceipt(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, true)
}

func (s *ReceiptService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return err
	}
	if receipt.IsActive == active {
		if active {
			return apperror.NewBadRequestError("Receipt is already active")
		}
		return apperror.NewBadRequestError("Receipt is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.receiptRepo.SetActive(ctx, id, active); err != nil {
			return err
		}
		_, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeReceipt, id, active)
		return err
	})
}
