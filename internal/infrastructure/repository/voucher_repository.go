package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"gorm.io/gorm"
)

// applyVoucherFilters layers the common voucher list filters onto a query.
// hasAccount reports whether the voucher table carries an account_id column.
func applyVoucherFilters(query *gorm.DB, params *domainRepo.VoucherFilterParams, hasAccount bool) *gorm.DB {
	if params.Search != "" {
		query = query.Where("bill_number ILIKE ?", "%"+params.Search+"%")
	}
	if hasAccount && params.AccountID != nil {
		query = query.Where("account_id = ?", *params.AccountID)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}
	return query
}

func paginate(query *gorm.DB, params *domainRepo.VoucherFilterParams) (*gorm.DB, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	params.Pagination.Validate()
	return query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC"), total, nil
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment voucher repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var p entity.Payment
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("CashAccount").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *paymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	return conn(ctx, r.db).Save(p).Error
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	query := conn(ctx, r.db).Model(&entity.Payment{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&payments).Error
	return payments, total, err
}

func (r *paymentRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.Payment{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt voucher repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, rec *entity.Receipt) error {
	return conn(ctx, r.db).Create(rec).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var rec entity.Receipt
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("CashAccount").
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rec, err
}

func (r *receiptRepository) Update(ctx context.Context, rec *entity.Receipt) error {
	return conn(ctx, r.db).Save(rec).Error
}

func (r *receiptRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	query := conn(ctx, r.db).Model(&entity.Receipt{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&receipts).Error
	return receipts, total, err
}

func (r *receiptRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.Receipt{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type salesInvoiceRepository struct {
	db *gorm.DB
}

// NewSalesInvoiceRepository creates a new sales invoice repository
func NewSalesInvoiceRepository(db *gorm.DB) domainRepo.SalesInvoiceRepository {
	return &salesInvoiceRepository{db: db}
}

func (r *salesInvoiceRepository) Create(ctx context.Context, s *entity.SalesInvoice) error {
	return conn(ctx, r.db).Create(s).Error
}

func (r *salesInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesInvoice, error) {
	var s entity.SalesInvoice
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("Items").Preload("Items.Item").
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *salesInvoiceRepository) Update(ctx context.Context, s *entity.SalesInvoice) error {
	return conn(ctx, r.db).Save(s).Error
}

func (r *salesInvoiceRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.SalesInvoice, int64, error) {
	var invoices []entity.SalesInvoice
	query := conn(ctx, r.db).Model(&entity.SalesInvoice{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&invoices).Error
	return invoices, total, err
}

func (r *salesInvoiceRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.SalesInvoice{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type salesQuotationRepository struct {
	db *gorm.DB
}

// NewSalesQuotationRepository creates a new sales quotation repository
func NewSalesQuotationRepository(db *gorm.DB) domainRepo.SalesQuotationRepository {
	return &salesQuotationRepository{db: db}
}

func (r *salesQuotationRepository) Create(ctx context.Context, s *entity.SalesQuotation) error {
	return conn(ctx, r.db).Create(s).Error
}

func (r *salesQuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesQuotation, error) {
	var s entity.SalesQuotation
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("Items").Preload("Items.Item").
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *salesQuotationRepository) Update(ctx context.Context, s *entity.SalesQuotation) error {
	return conn(ctx, r.db).Save(s).Error
}

// ReplaceItems swaps the quotation's line set wholesale. Quotations have no
// ledger or stock footprint, so an edit is just new lines plus new totals.
func (r *salesQuotationRepository) ReplaceItems(ctx context.Context, quotationID uuid.UUID, items []entity.SalesQuotationItem) error {
	db := conn(ctx, r.db)
	if err := db.Unscoped().
		Where("sales_quotation_id = ?", quotationID).
		Delete(&entity.SalesQuotationItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].SalesQuotationID = quotationID
	}
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *salesQuotationRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.SalesQuotation, int64, error) {
	var quotations []entity.SalesQuotation
	query := conn(ctx, r.db).Model(&entity.SalesQuotation{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&quotations).Error
	return quotations, total, err
}

func (r *salesQuotationRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.SalesQuotation{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type salesReturnRepository struct {
	db *gorm.DB
}

// NewSalesReturnRepository creates a new sales return repository
func NewSalesReturnRepository(db *gorm.DB) domainRepo.SalesReturnRepository {
	return &salesReturnRepository{db: db}
}

func (r *salesReturnRepository) Create(ctx context.Context, s *entity.SalesReturn) error {
	return conn(ctx, r.db).Create(s).Error
}

func (r *salesReturnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error) {
	var s entity.SalesReturn
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("Items").Preload("Items.Item").
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *salesReturnRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.SalesReturn, int64, error) {
	var returns []entity.SalesReturn
	query := conn(ctx, r.db).Model(&entity.SalesReturn{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&returns).Error
	return returns, total, err
}

func (r *salesReturnRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.SalesReturn{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase voucher repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, p *entity.Purchase) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var p entity.Purchase
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("Items").Preload("Items.Item").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	query := conn(ctx, r.db).Model(&entity.Purchase{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)
	if params.Search != "" {
		// Search also matches the supplier's own bill reference.
		query = conn(ctx, r.db).Model(&entity.Purchase{}).Scopes(CompanyScope(ctx))
		query = applyVoucherFiltersExceptSearch(query, params, true).
			Where("bill_number ILIKE ? OR supplier_bill_number ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&purchases).Error
	return purchases, total, err
}

func applyVoucherFiltersExceptSearch(query *gorm.DB, params *domainRepo.VoucherFilterParams, hasAccount bool) *gorm.DB {
	stripped := *params
	stripped.Search = ""
	return applyVoucherFilters(query, &stripped, hasAccount)
}

func (r *purchaseRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.Purchase{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type purchaseReturnRepository struct {
	db *gorm.DB
}

// NewPurchaseReturnRepository creates a new purchase return repository
func NewPurchaseReturnRepository(db *gorm.DB) domainRepo.PurchaseReturnRepository {
	return &purchaseReturnRepository{db: db}
}

func (r *purchaseReturnRepository) Create(ctx context.Context, p *entity.PurchaseReturn) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *purchaseReturnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error) {
	var p entity.PurchaseReturn
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Account").Preload("Items").Preload("Items.Item").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *purchaseReturnRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.PurchaseReturn, int64, error) {
	var returns []entity.PurchaseReturn
	query := conn(ctx, r.db).Model(&entity.PurchaseReturn{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, true)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("Account").Find(&returns).Error
	return returns, total, err
}

func (r *purchaseReturnRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.PurchaseReturn{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type stockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository creates a new stock adjustment repository
func NewStockAdjustmentRepository(db *gorm.DB) domainRepo.StockAdjustmentRepository {
	return &stockAdjustmentRepository{db: db}
}

func (r *stockAdjustmentRepository) Create(ctx context.Context, s *entity.StockAdjustment) error {
	return conn(ctx, r.db).Create(s).Error
}

func (r *stockAdjustmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error) {
	var s entity.StockAdjustment
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Items").Preload("Items.Item").
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *stockAdjustmentRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.StockAdjustment, int64, error) {
	var adjustments []entity.StockAdjustment
	query := conn(ctx, r.db).Model(&entity.StockAdjustment{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, false)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Find(&adjustments).Error
	return adjustments, total, err
}

func (r *stockAdjustmentRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.StockAdjustment{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type journalVoucherRepository struct {
	db *gorm.DB
}

// NewJournalVoucherRepository creates a new journal voucher repository
func NewJournalVoucherRepository(db *gorm.DB) domainRepo.JournalVoucherRepository {
	return &journalVoucherRepository{db: db}
}

func (r *journalVoucherRepository) Create(ctx context.Context, j *entity.JournalVoucher) error {
	return conn(ctx, r.db).Create(j).Error
}

func (r *journalVoucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JournalVoucher, error) {
	var j entity.JournalVoucher
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("Rows").Preload("Rows.Account").
		First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

func (r *journalVoucherRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.JournalVoucher, int64, error) {
	var vouchers []entity.JournalVoucher
	query := conn(ctx, r.db).Model(&entity.JournalVoucher{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, params, false)

	query, total, err := paginate(query, params)
	if err != nil {
		return nil, 0, err
	}
	err = query.Find(&vouchers).Error
	return vouchers, total, err
}

func (r *journalVoucherRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.JournalVoucher{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new debit/credit note repository
func NewNoteRepository(db *gorm.DB) domainRepo.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, n *entity.Note) error {
	return conn(ctx, r.db).Create(n).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var n entity.Note
	err := conn(ctx, r.db).Scopes(CompanyScope(ctx)).
		Preload("DebitAccount").Preload("CreditAccount").
		First(&n, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &n, err
}

func (r *noteRepository) List(ctx context.Context, params *domainRepo.NoteFilterParams) ([]entity.Note, int64, error) {
	var notes []entity.Note
	query := conn(ctx, r.db).Model(&entity.Note{}).Scopes(CompanyScope(ctx))
	query = applyVoucherFilters(query, &params.VoucherFilterParams, false)
	if params.Kind != "" {
		query = query.Where("kind = ?", params.Kind)
	}
	if params.AccountID != nil {
		query = query.Where("debit_account_id = ? OR credit_account_id = ?", *params.AccountID, *params.AccountID)
	}

	query, total, err := paginate(query, &params.VoucherFilterParams)
	if err != nil {
		return nil, 0, err
	}
	err = query.Preload("DebitAccount").Preload("CreditAccount").Find(&notes).Error
	return notes, total, err
}

func (r *noteRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&entity.Note{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
