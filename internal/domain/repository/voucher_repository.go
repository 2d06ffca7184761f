package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
)

// Voucher repositories share the same small surface: create the header with
// its owned lines, fetch with preloads, list with the common filters, flip the
// active flag. Edits go through Update plus ReplaceItems where lines exist.

// PaymentRepository defines the interface for payment voucher data operations
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, p *entity.Payment) error
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.Payment, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// ReceiptRepository defines the interface for receipt voucher data operations
type ReceiptRepository interface {
	Create(ctx context.Context, r *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, r *entity.Receipt) error
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.Receipt, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SalesInvoiceRepository defines the interface for sales invoice data operations
type SalesInvoiceRepository interface {
	Create(ctx context.Context, s *entity.SalesInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesInvoice, error)
	Update(ctx context.Context, s *entity.SalesInvoice) error
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.SalesInvoice, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SalesQuotationRepository defines the interface for sales quotation data operations
type SalesQuotationRepository interface {
	Create(ctx context.Context, s *entity.SalesQuotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesQuotation, error)
	Update(ctx context.Context, s *entity.SalesQuotation) error
	ReplaceItems(ctx context.Context, quotationID uuid.UUID, items []entity.SalesQuotationItem) error
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.SalesQuotation, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SalesReturnRepository defines the interface for sales return data operations
type SalesReturnRepository interface {
	Create(ctx context.Context, s *entity.SalesReturn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesReturn, error)
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.SalesReturn, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// PurchaseRepository defines the interface for purchase voucher data operations
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.Purchase, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// PurchaseReturnRepository defines the interface for purchase return data operations
type PurchaseReturnRepository interface {
	Create(ctx context.Context, p *entity.PurchaseReturn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseReturn, error)
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.PurchaseReturn, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// StockAdjustmentRepository defines the interface for stock adjustment data operations
type StockAdjustmentRepository interface {
	Create(ctx context.Context, s *entity.StockAdjustment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockAdjustment, error)
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.StockAdjustment, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// JournalVoucherRepository defines the interface for journal voucher data operations
type JournalVoucherRepository interface {
	Create(ctx context.Context, j *entity.JournalVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JournalVoucher, error)
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.JournalVoucher, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// NoteRepository defines the interface for debit/credit note data operations
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	List(ctx context.Context, params *NoteFilterParams) ([]entity.Note, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// NoteFilterParams narrows note listings to one kind when set
type NoteFilterParams struct {
	VoucherFilterParams
	Kind string
}
