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

// NoteService handles debit and credit notes. Both kinds are a single-amount
// pair of ledger effects between two accounts; the kind picks the bill number
// sequence.
type NoteService struct {
	transactor  repository.Transactor
	noteRepo    repository.NoteRepository
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	fyRepo      repository.FiscalYearRepository
	numbering   *NumberingService
}

// NewNoteService creates a new note service
func NewNoteService(
	transactor repository.Transactor,
	noteRepo repository.NoteRepository,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	fyRepo repository.FiscalYearRepository,
	numbering *NumberingService,
) *NoteService {
	return &NoteService{
		transactor:  transactor,
		noteRepo:    noteRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		fyRepo:      fyRepo,
		numbering:   numbering,
	}
}

// CreateNoteInput represents the create note input
type CreateNoteInput struct {
	UserID          uuid.UUID
	Kind            enum.VoucherType
	DebitAccountID  uuid.UUID
	CreditAccountID uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	Description     string
}

// CreateNote posts a debit or credit note.
func (s *NoteService) CreateNote(ctx context.Context, input *CreateNoteInput) (*entity.Note, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if input.Kind != enum.VoucherTypeDebitNote && input.Kind != enum.VoucherTypeCreditNote {
		return nil, apperror.NewBadRequestError("Note kind must be a debit note or a credit note")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	if input.DebitAccountID == input.CreditAccountID {
		return nil, apperror.NewBadRequestError("Debit and credit account must differ")
	}

	fy, err := activeFiscalYear(ctx, s.fyRepo, companyID)
	if err != nil {
		return nil, err
	}

	var note *entity.Note
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.numbering.NextBillNumber(ctx, fy, input.Kind)
		if err != nil {
			return err
		}

		note = &entity.Note{
			CompanyID:       companyID,
			FiscalYearID:    fy.ID,
			UserID:          input.UserID,
			Kind:            input.Kind,
			DebitAccountID:  input.DebitAccountID,
			CreditAccountID: input.CreditAccountID,
			Date:            input.Date,
			BillNumber:      billNumber,
			Amount:          input.Amount,
			Description:     input.Description,
			IsActive:        true,
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			return err
		}

		poster := newLedgerPoster(s.accountRepo, s.txnRepo)
		return poster.post(ctx, voucherRef{
			CompanyID:    companyID,
			FiscalYearID: fy.ID,
			VoucherType:  input.Kind,
			VoucherID:    note.ID,
			BillNumber:   billNumber,
			Date:         input.Date,
		}, []entrySpec{
			{AccountID: input.DebitAccountID, Debit: input.Amount, Description: input.Description},
			{AccountID: input.CreditAccountID, Credit: input.Amount, Description: input.Description},
		})
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote retrieves a note by ID
func (s *NoteService) GetNote(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFoundError("Note")
	}
	return note, nil
}

// ListNotes lists debit/credit notes
func (s *NoteService) ListNotes(ctx context.Context, params *repository.NoteFilterParams) (*pagination.PaginatedResult[entity.Note], error) {
	notes, total, err := s.noteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(notes, pag), nil
}

// CancelNote soft-cancels a note and its ledger entries.
func (s *NoteService) CancelNote(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, false)
}

// ReactivateNote restores a canceled note.
func (s *NoteService) ReactivateNote(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, id, true)
}

func (s *NoteService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	note, err := s.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if note.IsActive == active {
		if active {
			return apperror.NewBadRequestError("Note is already active")
		}
		return apperror.NewBadRequestError("Note is already canceled")
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.noteRepo.SetActive(ctx, id, active); err != nil {
			return err
		}
		_, err := s.txnRepo.SetActiveByVoucher(ctx, note.Kind, id, active)
		return err
	})
}
