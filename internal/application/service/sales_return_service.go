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

// SalesReturnService handles sales return operations
type SalesReturnService struct {
	transactor   repository.Transactor
	returnRepo   repository.SalesReturnRepository
	accountRepo  repository.AccountRepository
	itemRepo     repository.ItemRepository
	txnRepo      repository.TransactionRepository
	fyRepo       repository.FiscalYearRepository
	companyRepo  repository.CompanyRepository
	settingsRepo repository.SettingsRepository
	numbering    *NumberingService
}

// NewSalesReturnService creates a new sales return service
func NewSalesReturnService(
	transactor repository.Transactor,
	returnRepo repository.SalesReturnRepository,
	accountRepo repository.AccountRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	companyRepo repository.CompanyRepository,
	settingsRepo repository.SettingsRepository,
	numbering *NumberingService,
) *SalesReturnService {
	return &SalesReturnService{
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

// SalesReturnLineInput represents one returned line
type SalesReturnLineInput struct {
	ItemID      uuid.UUID
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	BatchNumber *string
}

// CreateSalesReturnInput represents the create sales return input
type CreateSalesReturnInput struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CashAccountID      *uuid.UUID
	Date               time.Time
	PaymentMode        enum.PaymentMode
	VatMode            enum.VatMode
	DiscountPercentage decimal.Decimal
	ManualRoundOff     *decimal.Decimal
	Description        string
	Lines              []SalesReturnLineInput
}

// CreateSalesReturn posts a sales return: the ledger mirror of a sales
// invoice. The customer is credited, sales and VAT are debited, and the
// returned quantities come back to stock as fresh lots.
func (s *SalesReturnService) CreateSalesReturn(ctx context.Context, input *CreateSalesReturnInput) (*entity.SalesReturn, error) {
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

	plain := make([]SalesLineInput, 0, len(input.Lines))
	for _, l := range input.Lines {
		plain = append(plain, SalesLineInput{ItemID: l.ItemID, Quantity: l.Quantity, Price: l.Price})
	}
	resolved, err := resolveLines(ctx, s.itemRepo, plain)
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

	var ret *entity.SalesReturn
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeSalesReturn)
		if err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for i, line := range resolved {
			err := keeper.add(ctx, line.Item.ID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Item.PurchasePrice,
				BatchNumber:       input.Lines[i].BatchNumber,
				SourceVoucherType: enum.VoucherTypeSalesReturn,
				SourceBillNumber:  billNumber,
			})
			if err != nil {
				return err
			}
		}

		ret = &entity.SalesReturn{
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
		for i, line := range resolved {
			ret.Items = append(ret.Items, entity.SalesReturnItem{
				ItemID:      line.Item.ID,
				Quantity:    line.Quantity,
				Price:       line.Price,
				Amount:      line.Amount,
				Vatable:     line.Vatable,
				BatchNumber: input.Lines[i].BatchNumber,
			})
		}
		if err := s.returnRepo.Create(ctx, ret); err != nil {
			return err
		}

		salesAccount, vatAccount, roundOffAccount, err := controlAccounts(
			ctx, s.accountRepo, enum.AccountGroupSales,
			!totals.VatAmount.IsZero(), !totals.RoundOffAmount.IsZero())
		if err != nil {
			return err
		}

		// Mirror of the invoice posting: the round-off delta flips sign too.
		entries := []entrySpec{
			{AccountID: input.AccountID, Credit: totals.TotalAmount, Description: "Sales return " + billNumber},
			{AccountID: salesAccount.ID, Debit: totals.TaxableAmount.Add(totals.NonTaxableAmount), Description: "Sales return " + billNumber},
		}
		if !totals.VatAmount.IsZero() {
			entries = append(entries, entrySpec{AccountID: vatAccount.ID, Debit: totals.VatAmount, Description: "VAT on " + billNumber})
		}
		entries = append(entries, roundOffEntry(accountIDOrNil(roundOffAccount), totals.RoundOffAmount.Neg(), "Round-off on "+billNumber)...)
		if input.PaymentMode.IsImmediate() {
			entries = append(entries,
				entrySpec{AccountID: input.AccountID, Debit: totals.TotalAmount, Description: "Refund of " + billNumber},
				entrySpec{AccountID: *input.CashAccountID, Credit: totals.TotalAmount, Description: "Refund of " + billNumber},
			)
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypeSalesReturn,
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

// GetSalesReturn retrieves a sales return by ID
func (s *SalesReturnService) GetSalesReturn(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Sales return")
	}
	return ret, nil
}

// ListSalesReturns lists sales returns
func (s *SalesReturnService) ListSalesReturns(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.SalesReturn], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(returns, pag), nil
}

// CancelSalesReturn soft-cancels a sales return, taking back the lots it
// restored.
func (s *SalesReturnService) CancelSalesReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.GetSalesReturn(ctx, id)
	if err != nil {
		return err
	}
	if !ret.IsActive {
		return apperror.NewBadRequestError("Sales return is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.returnRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeSalesReturn, id, false); err != nil {
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

// ReactivateSalesReturn restores a canceled sales return and its stock lots.
func (s *SalesReturnService) ReactivateSalesReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.GetSalesReturn(ctx, id)
	if err != nil {
		return err
	}
	if ret.IsActive {
		return apperror.NewBadRequestError("Sales return is already active")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.returnRepo.SetActive(ctx, id, true); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeSalesReturn, id, true); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range ret.Items {
			err := keeper.add(ctx, line.ItemID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Item.PurchasePrice,
				BatchNumber:       line.BatchNumber,
				SourceVoucherType: enum.VoucherTypeSalesReturn,
				SourceBillNumber:  ret.BillNumber,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
