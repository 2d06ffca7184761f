package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	domainRepo "github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// vatTables maps each VAT-bearing voucher family to its table.
var vatTables = []struct {
	voucherType enum.VoucherType
	table       string
}{
	{enum.VoucherTypeSales, "sales_invoices"},
	{enum.VoucherTypeSalesReturn, "sales_returns"},
	{enum.VoucherTypePurchase, "purchases"},
	{enum.VoucherTypePurchaseReturn, "purchase_returns"},
}

func (r *reportRepository) VatSummary(ctx context.Context, companyID, fiscalYearID uuid.UUID, from, to time.Time) ([]domainRepo.VatTotals, error) {
	db := conn(ctx, r.db)
	totals := make([]domainRepo.VatTotals, 0, len(vatTables))

	for _, vt := range vatTables {
		var row domainRepo.VatTotals
		err := db.Raw(`
			SELECT
				COUNT(*)                             AS voucher_count,
				COALESCE(SUM(taxable_amount), 0)     AS taxable_amount,
				COALESCE(SUM(non_taxable_amount), 0) AS non_taxable_amount,
				COALESCE(SUM(vat_amount), 0)         AS vat_amount,
				COALESCE(SUM(total_amount), 0)       AS total_amount
			FROM `+vt.table+`
			WHERE company_id = ?
			  AND fiscal_year_id = ?
			  AND is_active = true
			  AND deleted_at IS NULL
			  AND date >= ? AND date <= ?`,
			companyID, fiscalYearID, from, to,
		).Scan(&row).Error
		if err != nil {
			return nil, err
		}
		row.VoucherType = vt.voucherType
		totals = append(totals, row)
	}

	return totals, nil
}
