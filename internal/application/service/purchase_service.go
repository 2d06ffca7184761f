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

// PurchaseService handles purchase voucher operations
type PurchaseService struct {
	transactor   repository.Transactor
	purchaseRepo repository.PurchaseRepository
	accountRepo  repository.AccountRepository
	itemRepo     repository.ItemRepository
	txnRepo      repository.TransactionRepository
	fyRepo       repository.FiscalYearRepository
	companyRepo  repository.CompanyRepository
	settingsRepo repository.SettingsRepository
	numbering    *NumberingService
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	transactor repository.Transactor,
	purchaseRepo repository.PurchaseRepository,
	accountRepo repository.AccountRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	companyRepo repository.CompanyRepository,
	settingsRepo repository.SettingsRepository,
	numbering *NumberingService,
) *PurchaseService {
	return &PurchaseService{
		transactor:   transactor,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		itemRepo:     itemRepo,
		txnRepo:      txnRepo,
		fyRepo:       fyRepo,
		companyRepo:  companyRepo,
		settingsRepo: settingsRepo,
		numbering:    numbering,
	}
}

// PurchaseLineInput represents one purchased line with its lot metadata
type PurchaseLineInput struct {
	ItemID      uuid.UUID
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	BatchNumber *string
	ExpiryDate  *time.Time
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CashAccountID      *uuid.UUID
	Date               time.Time
	SupplierBillNumber *string
	PaymentMode        enum.PaymentMode
	VatMode            enum.VatMode
	DiscountPercentage decimal.Decimal
	ManualRoundOff     *decimal.Decimal
	Description        string
	Lines              []PurchaseLineInput
}

// CreatePurchase posts a purchase voucher: the supplier is credited, purchase
// and VAT are debited, and each line becomes one stock lot carrying its batch
// and expiry metadata.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !input.PaymentMode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment mode")
	}
	if input.PaymentMode.IsImmediate() && input.CashAccountID == nil {
		return nil, apperror.NewBadRequestError("Cash account required for immediate settlement")
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

	var purchase *entity.Purchase
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypePurchase)
		if err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for i, line := range resolved {
			err := keeper.add(ctx, line.Item.ID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Price,
				BatchNumber:       input.Lines[i].BatchNumber,
				ExpiryDate:        input.Lines[i].ExpiryDate,
				SourceVoucherType: enum.VoucherTypePurchase,
				SourceBillNumber:  billNumber,
			})
			if err != nil {
				return err
			}
		}

		purchase = &entity.Purchase{
			CompanyID:          companyID,
			FiscalYearID:       fy.ID,
			UserID:             input.UserID,
			AccountID:          input.AccountID,
			CashAccountID:      input.CashAccountID,
			Date:               input.Date,
			BillNumber:         billNumber,
			SupplierBillNumber: input.SupplierBillNumber,
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
			purchase.Items = append(purchase.Items, entity.PurchaseItem{
				ItemID:      line.Item.ID,
				Quantity:    line.Quantity,
				Price:       line.Price,
				Amount:      line.Amount,
				Vatable:     line.Vatable,
				BatchNumber: input.Lines[i].BatchNumber,
				ExpiryDate:  input.Lines[i].ExpiryDate,
			})
		}
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}

		purchaseAccount, vatAccount, roundOffAccount, err := controlAccounts(
			ctx, s.accountRepo, enum.AccountGroupPurchase,
			!totals.VatAmount.IsZero(), !totals.RoundOffAmount.IsZero())
		if err != nil {
			return err
		}

		entries := []entrySpec{
			{AccountID: input.AccountID, Credit: totals.TotalAmount, Description: "Purchase " + billNumber},
			{AccountID: purchaseAccount.ID, Debit: totals.TaxableAmount.Add(totals.NonTaxableAmount), Description: "Purchase " + billNumber},
		}
		if !totals.VatAmount.IsZero() {
			entries = append(entries, entrySpec{AccountID: vatAccount.ID, Debit: totals.VatAmount, Description: "VAT on " + billNumber})
		}
		entries = append(entries, roundOffEntry(accountIDOrNil(roundOffAccount), totals.RoundOffAmount.Neg(), "Round-off on "+billNumber)...)
		if input.PaymentMode.IsImmediate() {
			entries = append(entries,
				entrySpec{AccountID: input.AccountID, Debit: totals.TotalAmount, Description: "Settlement of " + billNumber},
				entrySpec{AccountID: *input.CashAccountID, Credit: totals.TotalAmount, Description: "Settlement of " + billNumber},
			)
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypePurchase,
			VoucherID:    purchase.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, entries)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchase vouchers
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// CancelPurchase soft-cancels a purchase, removing the lots it created. Lot
// quantity already consumed by later vouchers is drawn from remaining lots
// oldest first.
func (s *PurchaseService) CancelPurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return err
	}
	if !purchase.IsActive {
		return apperror.NewBadRequestError("Purchase is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.purchaseRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypePurchase, id, false); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range purchase.Items {
			if err := keeper.removeBySource(ctx, line.ItemID, line.Quantity, purchase.BillNumber); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReactivatePurchase restores a canceled purchase and recreates its lots.
func (s *PurchaseService) ReactivatePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return err
	}
	if purchase.IsActive {
		return apperror.NewBadRequestError("Purchase is already active")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.purchaseRepo.SetActive(ctx, id, true); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypePurchase, id, true); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range purchase.Items {
			err := keeper.add(ctx, line.ItemID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Price,
				BatchNumber:       line.BatchNumber,
				ExpiryDate:        line.ExpiryDate,
				SourceVoucherType: enum.VoucherTypePurchase,
				SourceBillNumber:  purchase.BillNumber,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
