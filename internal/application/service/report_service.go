package service

import (
	"context"
	"time"

	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReportService handles day book and statutory VAT reporting
type ReportService struct {
	txnRepo    repository.TransactionRepository
	reportRepo repository.ReportRepository
	fyRepo     repository.FiscalYearRepository
}

// NewReportService creates a new report service
func NewReportService(txnRepo repository.TransactionRepository, reportRepo repository.ReportRepository, fyRepo repository.FiscalYearRepository) *ReportService {
	return &ReportService{txnRepo: txnRepo, reportRepo: reportRepo, fyRepo: fyRepo}
}

// DayBook is the chronological ledger activity over a date range with its
// aggregate debit and credit movement.
type DayBook struct {
	From        time.Time                                       `json:"from"`
	To          time.Time                                       `json:"to"`
	TotalDebit  decimal.Decimal                                 `json:"total_debit"`
	TotalCredit decimal.Decimal                                 `json:"total_credit"`
	Entries     *pagination.PaginatedResult[entity.Transaction] `json:"entries"`
}

// GetDayBook returns every active ledger entry of the active fiscal year in
// the range, in posting order. Cancelled vouchers never appear.
func (s *ReportService) GetDayBook(ctx context.Context, from, to time.Time, params *pagination.PaginationParams) (*DayBook, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	entries, total, err := s.txnRepo.ListByDateRange(ctx, companyID, fy.ID, from, to, params)
	if err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return &DayBook{
		From:        from,
		To:          to,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Entries:     pagination.NewPaginatedResult(entries, pag),
	}, nil
}

// VatSummary is the statutory VAT return view: per-family totals plus the
// net VAT position. NetVat is output VAT on sales minus input VAT on
// purchases, with returns offsetting their side.
type VatSummary struct {
	From   time.Time             `json:"from"`
	To     time.Time             `json:"to"`
	Rows   []repository.VatTotals `json:"rows"`
	NetVat decimal.Decimal       `json:"net_vat"`
}

// GetVatSummary aggregates the VAT figures of the active fiscal year's
// sales, sales return, purchase and purchase return vouchers over the range.
func (s *ReportService) GetVatSummary(ctx context.Context, from, to time.Time) (*VatSummary, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.VatSummary(ctx, companyID, fy.ID, from, to)
	if err != nil {
		return nil, err
	}

	netVat := decimal.Zero
	for _, row := range rows {
		switch row.VoucherType {
		case enum.VoucherTypeSales:
			netVat = netVat.Add(row.VatAmount)
		case enum.VoucherTypeSalesReturn:
			netVat = netVat.Sub(row.VatAmount)
		case enum.VoucherTypePurchase:
			netVat = netVat.Sub(row.VatAmount)
		case enum.VoucherTypePurchaseReturn:
			netVat = netVat.Add(row.VatAmount)
		}
	}

	return &VatSummary{
		From:   from,
		To:     to,
		Rows:   rows,
		NetVat: netVat,
	}, nil
}
