package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// VatTotals aggregates a voucher family's VAT figures over a date range
type VatTotals struct {
	VoucherType      enum.VoucherType `json:"voucher_type"`
	VoucherCount     int64            `json:"voucher_count"`
	TaxableAmount    decimal.Decimal  `json:"taxable_amount"`
	NonTaxableAmount decimal.Decimal  `json:"non_taxable_amount"`
	VatAmount        decimal.Decimal  `json:"vat_amount"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
}

// ReportRepository defines the interface for statutory report aggregation
type ReportRepository interface {
	// VatSummary sums active sales, sales return, purchase and purchase return
	// vouchers between from and to, one row per voucher family.
	VatSummary(ctx context.Context, companyID, fiscalYearID uuid.UUID, from, to time.Time) ([]VatTotals, error)
}
