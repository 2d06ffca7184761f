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

// SalesInvoiceService handles sales invoice operations
type SalesInvoiceService struct {
	transactor   repository.Transactor
	salesRepo    repository.SalesInvoiceRepository
	accountRepo  repository.AccountRepository
	itemRepo     repository.ItemRepository
	txnRepo      repository.TransactionRepository
	fyRepo       repository.FiscalYearRepository
	companyRepo  repository.CompanyRepository
	settingsRepo repository.SettingsRepository
	numbering    *NumberingService
}

// NewSalesInvoiceService creates a new sales invoice service
func NewSalesInvoiceService(
	transactor repository.Transactor,
	salesRepo repository.SalesInvoiceRepository,
	accountRepo repository.AccountRepository,
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	companyRepo repository.CompanyRepository,
	settingsRepo repository.SettingsRepository,
	numbering *NumberingService,
) *SalesInvoiceService {
	return &SalesInvoiceService{
		transactor:   transactor,
		salesRepo:    salesRepo,
		accountRepo:  accountRepo,
		itemRepo:     itemRepo,
		txnRepo:      txnRepo,
		fyRepo:       fyRepo,
		companyRepo:  companyRepo,
		settingsRepo: settingsRepo,
		numbering:    numbering,
	}
}

// SalesLineInput represents one invoice line as submitted by the caller
type SalesLineInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// CreateSalesInvoiceInput represents the create sales invoice input
type CreateSalesInvoiceInput struct {
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

// resolvedLines pairs submitted lines with their loaded items and computed
// amounts.
type resolvedLine struct {
	Item     entity.Item
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Amount   decimal.Decimal
	Vatable  bool
}

// resolveLines loads and validates the items behind submitted voucher lines.
func resolveLines(ctx context.Context, itemRepo repository.ItemRepository, lines []SalesLineInput) ([]resolvedLine, error) {
	if len(lines) == 0 {
		return nil, apperror.NewBadRequestError("Voucher must have at least one line")
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		if l.Price.IsNegative() {
			return nil, apperror.NewBadRequestError("Line price cannot be negative")
		}
		ids = append(ids, l.ItemID)
	}

	items, err := itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	resolved := make([]resolvedLine, 0, len(lines))
	for _, l := range lines {
		item, ok := byID[l.ItemID]
		if !ok {
			return nil, apperror.NewNotFoundError("Item")
		}
		if !item.IsActive {
			return nil, apperror.NewBadRequestError("Item " + item.Name + " is inactive")
		}
		resolved = append(resolved, resolvedLine{
			Item:     item,
			Quantity: l.Quantity,
			Price:    l.Price,
			Amount:   l.Quantity.Mul(l.Price).Round(2),
			Vatable:  item.VatStatus == enum.VatStatusVatable,
		})
	}
	return resolved, nil
}

func voucherLines(resolved []resolvedLine) []VoucherLine {
	lines := make([]VoucherLine, 0, len(resolved))
	for _, r := range resolved {
		lines = append(lines, VoucherLine{Vatable: r.Vatable, Amount: r.Amount})
	}
	return lines
}

// controlAccounts resolves the company's sales/purchase, VAT and round-off
// control accounts for posting.
func controlAccounts(ctx context.Context, accountRepo repository.AccountRepository, counterGroup enum.AccountGroup, needVat, needRoundOff bool) (counter, vat, roundOff *entity.Account, err error) {
	counter, err = accountRepo.GetFirstByGroup(ctx, counterGroup)
	if err != nil {
		return nil, nil, nil, err
	}
	if counter == nil {
		return nil, nil, nil, apperror.NewBadRequestError("No " + counterGroup.String() + " account configured")
	}
	if needVat {
		vat, err = accountRepo.GetFirstByGroup(ctx, enum.AccountGroupTax)
		if err != nil {
			return nil, nil, nil, err
		}
		if vat == nil {
			return nil, nil, nil, apperror.NewBadRequestError("No tax account configured")
		}
	}
	if needRoundOff {
		roundOff, err = accountRepo.GetFirstByGroup(ctx, enum.AccountGroupRoundOff)
		if err != nil {
			return nil, nil, nil, err
		}
		if roundOff == nil {
			return nil, nil, nil, apperror.NewBadRequestError("No round-off account configured")
		}
	}
	return counter, vat, roundOff, nil
}

// CreateSalesInvoice posts a sales invoice in one transaction: bill number,
// stock consumption oldest-batch-first, invoice rows, and the ledger entry
// chain. Entry order is fixed: party, sales, VAT, round-off, cash settlement.
func (s *SalesInvoiceService) CreateSalesInvoice(ctx context.Context, input *CreateSalesInvoiceInput) (*entity.SalesInvoice, error) {
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

	var invoice *entity.SalesInvoice
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, enum.VoucherTypeSales)
		if err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range resolved {
			if err := keeper.consume(ctx, line.Item.ID, line.Quantity); err != nil {
				return err
			}
		}

		invoice = &entity.SalesInvoice{
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
			invoice.Items = append(invoice.Items, entity.SalesInvoiceItem{
				ItemID:   line.Item.ID,
				Quantity: line.Quantity,
				Price:    line.Price,
				Amount:   line.Amount,
				Vatable:  line.Vatable,
			})
		}
		if err := s.salesRepo.Create(ctx, invoice); err != nil {
			return err
		}

		salesAccount, vatAccount, roundOffAccount, err := controlAccounts(
			ctx, s.accountRepo, enum.AccountGroupSales,
			!totals.VatAmount.IsZero(), !totals.RoundOffAmount.IsZero())
		if err != nil {
			return err
		}

		entries := []entrySpec{
			{AccountID: input.AccountID, Debit: totals.TotalAmount, Description: "Sales " + billNumber},
			{AccountID: salesAccount.ID, Credit: totals.TaxableAmount.Add(totals.NonTaxableAmount), Description: "Sales " + billNumber},
		}
		if !totals.VatAmount.IsZero() {
			entries = append(entries, entrySpec{AccountID: vatAccount.ID, Credit: totals.VatAmount, Description: "VAT on " + billNumber})
		}
		entries = append(entries, roundOffEntry(accountIDOrNil(roundOffAccount), totals.RoundOffAmount, "Round-off on "+billNumber)...)
		if input.PaymentMode.IsImmediate() {
			entries = append(entries,
				entrySpec{AccountID: *input.CashAccountID, Debit: totals.TotalAmount, Description: "Settlement of " + billNumber},
				entrySpec{AccountID: input.AccountID, Credit: totals.TotalAmount, Description: "Settlement of " + billNumber},
			)
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  enum.VoucherTypeSales,
			VoucherID:    invoice.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, entries)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func accountIDOrNil(account *entity.Account) uuid.UUID {
	if account == nil {
		return uuid.Nil
	}
	return account.ID
}

// GetSalesInvoice retrieves a sales invoice by ID
func (s *SalesInvoiceService) GetSalesInvoice(ctx context.Context, id uuid.UUID) (*entity.SalesInvoice, error) {
	invoice, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sales invoice")
	}
	return invoice, nil
}

// ListSalesInvoices lists sales invoices
func (s *SalesInvoiceService) ListSalesInvoices(ctx context.Context, params *repository.VoucherFilterParams) (*pagination.PaginatedResult[entity.SalesInvoice], error) {
	invoices, total, err := s.salesRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateSalesInvoiceInput represents the editable header fields of a posted
// invoice. Lines are immutable after posting; corrections go through a sales
// return or cancel-and-repost.
type UpdateSalesInvoiceInput struct {
	AccountID   *uuid.UUID
	Date        *time.Time
	Description *string
}

// UpdateSalesInvoice edits header fields of a posted invoice and reposts its
// ledger entries with the same monetary breakdown.
func (s *SalesInvoiceService) UpdateSalesInvoice(ctx context.Context, id uuid.UUID, input *UpdateSalesInvoiceInput) (*entity.SalesInvoice, error) {
	invoice, err := s.GetSalesInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if !invoice.IsActive {
		return nil, apperror.NewBadRequestError("Canceled voucher cannot be edited")
	}

	if input.AccountID != nil {
		invoice.AccountID = *input.AccountID
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.Description != nil {
		invoice.Description = *input.Description
	}
	if invoice.CashAccountID != nil && *invoice.CashAccountID == invoice.AccountID {
		return nil, apperror.NewBadRequestError("Party and cash account must differ")
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.salesRepo.Update(ctx, invoice); err != nil {
			return err
		}

		salesAccount, vatAccount, roundOffAccount, err := controlAccounts(
			ctx, s.accountRepo, enum.AccountGroupSales,
			!invoice.VatAmount.IsZero(), !invoice.RoundOffAmount.IsZero())
		if err != nil {
			return err
		}

		entries := []entrySpec{
			{AccountID: invoice.AccountID, Debit: invoice.TotalAmount, Description: "Sales " + invoice.BillNumber},
			{AccountID: salesAccount.ID, Credit: invoice.TaxableAmount.Add(invoice.NonTaxableAmount), Description: "Sales " + invoice.BillNumber},
		}
		if !invoice.VatAmount.IsZero() {
			entries = append(entries, entrySpec{AccountID: vatAccount.ID, Credit: invoice.VatAmount, Description: "VAT on " + invoice.BillNumber})
		}
		entries = append(entries, roundOffEntry(accountIDOrNil(roundOffAccount), invoice.RoundOffAmount, "Round-off on "+invoice.BillNumber)...)
		if invoice.PaymentMode.IsImmediate() {
			entries = append(entries,
				entrySpec{AccountID: *invoice.CashAccountID, Debit: invoice.TotalAmount, Description: "Settlement of " + invoice.BillNumber},
				entrySpec{AccountID: invoice.AccountID, Credit: invoice.TotalAmount, Description: "Settlement of " + invoice.BillNumber},
			)
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.repost(ctx, voucherRef{
			CompanyID:    invoice.CompanyID,
			FiscalYearID: invoice.FiscalYearID,
			VoucherType:  enum.VoucherTypeSales,
			VoucherID:    invoice.ID,
			BillNumber:   invoice.BillNumber,
			Date:         invoice.Date,
		}, entries)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// CancelSalesInvoice soft-cancels an invoice: header and ledger entries are
// flagged inactive and the sold quantities come back to stock as fresh lots
// tagged with the invoice's bill number.
func (s *SalesInvoiceService) CancelSalesInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.GetSalesInvoice(ctx, id)
	if err != nil {
		return err
	}
	if !invoice.IsActive {
		return apperror.NewBadRequestError("Sales invoice is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.salesRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeSales, id, false); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range invoice.Items {
			err := keeper.add(ctx, line.ItemID, lotInput{
				Quantity:          line.Quantity,
				UnitCost:          line.Item.PurchasePrice,
				SourceVoucherType: enum.VoucherTypeSales,
				SourceBillNumber:  invoice.BillNumber,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReactivateSalesInvoice restores a canceled invoice, consuming the restored
// quantities again.
func (s *SalesInvoiceService) ReactivateSalesInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.GetSalesInvoice(ctx, id)
	if err != nil {
		return err
	}
	if invoice.IsActive {
		return apperror.NewBadRequestError("Sales invoice is already active")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.salesRepo.SetActive(ctx, id, true); err != nil {
			return err
		}
		if _, err := s.txnRepo.SetActiveByVoucher(ctx, enum.VoucherTypeSales, id, true); err != nil {
			return err
		}

		keeper := newStockKeeper(s.itemRepo)
		for _, line := range invoice.Items {
			if err := keeper.removeBySource(ctx, line.ItemID, line.Quantity, invoice.BillNumber); err != nil {
				return err
			}
		}
		return nil
	})
}
