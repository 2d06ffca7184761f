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

// PurchaseReturnService handles purchase return operations
type PurchaseReturnService struct {
	transactor   repository.Transactor
	returnRepo   repository.PurchaseReturnRepository
	accountRepo  repository.AccountRepository
	itemRepo     repository.ItemRepository
	txnRepo      repository.TransactionRepository
	fyRepo       repository.FiscalYearRepository
	companyRepo  repository.CompanyRepository
	settingsRepo repository.SettingsRepository
	numbering    *NumberingService
}

// NewPurchaseReturnService creates a new purchase return service
func NewPurchaseReturnService(
	transactor repository.Transactor,
	returnRepo repository.PurchaseReturnRepository,
	accountRepo repository.AccountRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	companyRepo repository.CompanyRepository,
	settingsRepo repository.SettingsRepository,
	numbering *NumberingService,
) *PurchaseReturnService {
	return &PurchaseReturnService{
		transactor:   transactor,
		returnRepo:   returnRepo,
		accountRepo:  accountRepo,
		itemRepo:     itemRepo,
		txnRepo:      txnRepo,
		fyRepo:       fyRepo,
		companyRepo:  companyRepo,
		settingsRepo: settingsRepo,
		numbering:    numbering,
	}
}

// CreatePurchaseReturnInput represents the create purchase return input
type CreatePurchaseReturnInput struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CashAccountID      *uuid.UUID
	Date               time.Time
	PaymentMode        enum.PaymentMode
	VatMode            enum.VatMode
	DiscountPercentage decimal.Decimal
	ManualRoundOff     *decimal.Decimal
	Description        string
	Lines              []SalesLineInput
}

// CreatePurchaseReturn posts a purchase return: the supplier is debited,
// purchase and VAT are credited, and the returned quantities are consumed
// from stock oldest-batch-first.
func (s *PurchaseReturnService) CreatePurchaseReturn(ctx context.Context, input *CreatePurchaseReturnInput) (*entity.PurchaseReturn, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !input.PaymentMode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment mode")
	}
	if input.PaymentMode.IsImmediate() && input.CashAccountID == nil {
		return nil, apperror.NewBadRequestError("Cash account required for immediate refund")
	}
	if input.CashAccountID != nil && *input.CashAccountID == input.AccountID {
		return nil, apperror.NewBadRequestError("Party and cash account must differ")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}
	vatRate, err := companyVatRate(ctx, s.companyRepo, companyID)
	if err != nil {
		return nil, err
	}
	autoRoundOff, err := userAutoRoundOff(ctx, s.settingsRepo, input.UserID, companyID)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveLines(ctx, s.itemRepo, input.Lines)
	if err != nil {
		return nil, err
	}
	totals, err := ComputeVoucherTotals(&VoucherTotalsInput{
		Lines:              voucherLines(resolved),
		VatMode:            input.VatMode,
		DiscountPercentage: input.DiscountPercentage,
		VatRate:            vatRate,
		AutoRoundOff:       autoRoundOff,
		ManualRoundOff:     input.ManualRoundOff,
	})
	if err != nil {
		return nil, err
	}

	var ret *entity.PurchaseReturn
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypePurchaseReturn)
		if err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range resolved {
			if err := keeper.consume(ctx, line.Item.ID, line.Quantity); err != nil {
				return err
			}
		}

		ret = &entity.PurchaseReturn{
			CompanyID:          companyID,
			FiscalYearID:       fy.ID,
			UserID:             input.UserID,
			AccountID:          input.AccountID,
			CashAccountID:      input.CashAccountID,
			Date:               input.Date,
			BillNumber:         billNumber,
			PaymentMode:        input.PaymentMode,
			VatMode:            input.VatMode,
			DiscountPercentage: input.DiscountPercentage,
			SubTotal:           totals.SubTotal,
			DiscountAmount:     totals.DiscountAmount,
			TaxableAmount:      totals.TaxableAmount,
			NonTaxableAmount:   totals.NonTaxableAmount,
			VatAmount:          totals.VatAmount,
			RoundOffAmount:     totals.RoundOffAmount,
			TotalAmount:        totals.TotalAmount,
			Description:        input.Description,
			IsActive:           true,
		}
		for _, line := range resolved {
			ret.Items = append(ret.Items, entity.PurchaseReturnItem{
				ItemID:   line.Item.ID,
				Quantity: line.Quantity,
				Price:    line.Price,
				Amount:   line.Amount,
				Vatable:  line.Vatable,
			})
		}
		if err := s.returnRepo.Create(ctx, ret); err != nil {
			return err
		}

		purchaseAccount, vatAccount, roundOffAccount, err := controlAccounts(
			ctx, s.accountRepo, enum.AccountGroupPurchase,
			!totals.VatAmount.IsZero(), !totals.RoundOffAmount.IsZero())
		if err != nil {
			return err
		}

		entries := []entrySpec{
			{AccountID: input.AccountID, Debit: totals.TotalAmount, Description: "Purchase return " + billNumber},
			{AccountID: purchaseAccount.ID, Credit: totals.TaxableAmount.Add(totals.NonTaxableAmount), Description: "Purchase return " + billNumber},
		}
		if !totals.VatAmount.IsZero() {
			entries = append(entries, entrySpec{AccountID: vatAccount.ID, Credit: totals.VatAmount, Description: "VAT on " + billNumber})
		}
		entries = append(entries, roundOffEntry(accountIDOrNil(roundOffAccount), totals.RoundOffAmount, "Round-off on "+billNumber)...)
		if input.PaymentMode.IsImmediate() {
			entries = append(entries,
				entrySpec{AccountID: *input.CashAccountID, Debit: totals.TotalAmount, Description: "Refund of " + billNumber},
				entrySpec{AccountID: input.AccountID, Credit: totals.TotalAmount, Description: "Refund of " + billNumber},
			)
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypePurchaseReturn,
			VoucherID:    ret.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, entries)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// GetPurchaseReturn retrieves a purchase return by ID
func (s *PurchaseReturnService) GetPurchaseReturn(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Purchase return")
	}
	return ret, nil
}

// ListPurchaseReturns lists purchase returns
func (s *PurchaseReturnService) ListPurchaseReturns(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.PurchaseReturn], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(returns, pag), nil
}

// CancelPurchaseReturn soft-cancels a purchase return, restoring the consumed
// quantities as fresh lots.
func (s *PurchaseReturnService) CancelPurchaseReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.GetPurchaseReturn(ctx, id)
	if err != nil {
		return err
	}
	if !ret.IsActive {
		return apperror.NewBadRequestError("Purchase return is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.returnRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypePurchaseReturn, id, false); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range ret.Items {
			err := keeper.add(ctx, line.ItemID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Price,
				SourceVoucherType: enum.VoucherTypePurchaseReturn,
				SourceBillNumber:  ret.BillNumber,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReactivatePurchaseReturn restores a canceled purchase return, consuming the
// quantities again.
func (s *PurchaseReturnService) ReactivatePurchaseReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.GetPurchaseReturn(ctx, id)
	if err != nil {
		return err
	}
	if ret.IsActive {
		return apperror.NewBadRequestError("Purchase return is already active")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.returnRepo.SetActive(ctx, id, true); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypePurchaseReturn, id, true); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range ret.Items {
			if err := keeper.removeBySource(ctx, line.ItemID, line.Quantity, ret.BillNumber); err != nil {
				return err
			}
		}
		return nil
	})
}
