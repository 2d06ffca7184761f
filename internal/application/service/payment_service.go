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

// PaymentService handles payment voucher operations
type PaymentService struct {
	transactor  repository.Transactor
	paymentRepo repository.PaymentRepository
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	fyRepo      repository.FiscalYearRepository
	numbering   *NumberingService
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	transactor repository.Transactor,
	paymentRepo repository.PaymentRepository,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	numbering *NumberingService,
) *PaymentService {
	return &PaymentService{
		transactor:  transactor,
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		fyRepo:      fyRepo,
		numbering:   numbering,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	UserID        uuid.UUID
	AccountID     uuid.UUID
	CashAccountID uuid.UUID
	Date          time.Time
	Mode          enum.PaymentMode
	Amount        decimal.Decimal
	Description   string
}

// CreatePayment posts a payment voucher: the party account is debited and the
// cash/bank account is credited, both entries chained in one transaction with
// the bill number issue.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
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

	var payment *entity.Payment
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypePayment)
		if err != nil {
			return err
		}

		payment = &entity.Payment{
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
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypePayment,
			VoucherID:    payment.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, []entrySpec{
			{AccountID: input.AccountID, Debit: input.Amount, Description: input.Description},
			{AccountID: input.CashAccountID, Credit: input.Amount, Description: input.Description},
		})
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payment vouchers
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// UpdatePaymentInput represents the update payment input
type UpdatePaymentInput struct {
	AccountID     *uuid.UUID
	CashAccountID *uuid.UUID
	Date          *time.Time
	Mode          *enum.PaymentMode
	Amount        *decimal.Decimal
	Description   *string
}

// UpdatePayment edits a payment voucher. The bill number is kept; the ledger
// entries are deleted and reposted with the new values in one transaction.
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !payment.IsActive {
		return nil, apperror.NewBadRequestError("Canceled voucher cannot be edited")
	}

	if input.AccountID != nil {
		payment.AccountID = *input.AccountID
	}
	if input.CashAccountID != nil {
		payment.CashAccountID = *input.CashAccountID
	}
	if input.Date != nil {
		payment.Date = *input.Date
	}
	if input.Mode != nil {
		if !input.Mode.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment mode")
		}
		payment.Mode = *input.Mode
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, apperror.NewBadRequestError("Amount must be positive")
		}
		payment.Amount = *input.Amount
	}
	if input.Description != nil {
		payment.Description = *input.Description
	}
	if payment.AccountID == payment.CashAccountID {
		return nil, apperror.NewBadRequestError("Party and cash account must differ")
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.repost(ctx, voucherRef{
			CompanyID:    payment.CompanyID,
			FiscalYearID: payment.FiscalYearID,
			VoucherType:  enum.VoucherTypePayment,
			VoucherID:    payment.ID,
			BillNumber:   payment.BillNumber,
			Date:         payment.Date,
		}, []entrySpec{
			{AccountID: payment.AccountID, Debit: payment.Amount, Description: payment.Description},
			{AccountID: payment.CashAccountID, Credit: payment.Amount, Description: payment.Description},
		})
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// CancelPayment soft-cancels a payment: the header and its ledger entries are
// flagged inactive, never deleted, and the bill number stays consumed.
func (s *PaymentService) CancelPayment(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, false)
}

// ReactivatePayment restores a canceled payment and its ledger entries.
func (s *PaymentService) ReactivatePayment(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, true)
}

func (s *PaymentService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return err
	}
	if payment.IsActive == active {
		if active {
			return apperror.NewBadRequestError("Payment is already active")
		}
		return apperror.NewBadRequestError("Payment is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.SetActive(ctx, id, active); err != nil {
			return err
		}
		_, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypePayment, id, active)
		return err
	})
}
