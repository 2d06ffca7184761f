package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/shopspring/decimal"
)

// entrySpec is one ledger effect a voucher wants to post: a debit or credit
// against one account. Entries are posted strictly in slice order so the
// statement of every voucher reads the same way.
type entrySpec struct {
	AccountID   uuid.UUID
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// ledgerPoster writes balance-chained ledger entries. It must only be used
// inside a posting transaction: each entry locks its account row, reads the
// latest running balance, and extends the chain with
// balance = previous + debit - credit. The sign convention is uniform across
// account groups.
type ledgerPoster struct {
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
}

func newLedgerPoster(accountRepo repository.AccountRepository, txnRepo repository.TransactionRepository) *ledgerPoster {
	return &ledgerPoster{accountRepo: accountRepo, txnRepo: txnRepo}
}

// voucherRef identifies the voucher the entries belong to.
type voucherRef struct {
	CompanyID    uuid.UUID
	FiscalYearID uuid.UUID
	VoucherType  enum.VoucherType
	VoucherID    uuid.UUID
	BillNumber   string
	Date         time.Time
}

func (p *ledgerPoster) post(ctx context.Context, ref voucherRef, entries []entrySpec) error {
	for _, e := range entries {
		account, err := p.accountRepo.LockForPosting(ctx, e.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperror.NewNotFoundError("Account")
		}
		if !account.IsActive {
			return apperror.NewBadRequestError("Account " + account.Name + " is inactive")
		}

		previous, found, err := p.txnRepo.LatestBalance(ctx, e.AccountID)
		if err != nil {
			return err
		}
		if !found {
			previous = account.OpeningBalance
		}

		txn := &entity.Transaction{
			CompanyID:    ref.CompanyID,
			FiscalYearID: ref.FiscalYearID,
			AccountID:    e.AccountID,
			Date:         ref.Date,
			VoucherType:  ref.VoucherType,
			VoucherID:    ref.VoucherID,
			BillNumber:   ref.BillNumber,
			Description:  e.Description,
			Debit:        e.Debit,
			Credit:       e.Credit,
			Balance:      previous.Add(e.Debit).Sub(e.Credit),
			IsActive:     true,
		}
		if err := p.txnRepo.Create(ctx, txn); err != nil {
			return err
		}
	}
	return nil
}

// repost replaces a voucher's entries with a fresh set inside the same
// transaction, used by edits.
func (p *ledgerPoster) repost(ctx context.Context, ref voucherRef, entries []entrySpec) error {
	if err := p.txnRepo.DeleteByVoucher(ctx, ref.VoucherType, ref.VoucherID); err != nil {
		return err
	}
	return p.post(ctx, ref, entries)
}

// roundOffEntry builds the round-off ledger effect for a voucher. A positive
// delta increased the total the counterparty owes, so the round-off account
// absorbs it as income (credit); a negative delta is an expense (debit). A
// zero delta posts nothing.
func roundOffEntry(accountID uuid.UUID, delta decimal.Decimal, description string) []entrySpec {
	if delta.IsZero() {
		return nil
	}
	e := entrySpec{AccountID: accountID, Description: description}
	if delta.IsPositive() {
		e.Credit = delta
	} else {
		e.Debit = delta.Neg()
	}
	return []entrySpec{e}
}
