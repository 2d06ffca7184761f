package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/database"
	infraRepo "github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/pagination"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// postingFixture is a seeded tenant for posting tests: one company with an
// active fiscal year, a party account and a cash account.
type postingFixture struct {
	db      *gorm.DB
	ctx     context.Context
	user    *entity.User
	company *entity.Company
	fy      *entity.FiscalYear
	party   *entity.Account
	cash    *entity.Account
}

// setupPostingTest connects to the dedicated test database named by
// TEST_DATABASE_URL and seeds a fresh tenant. Tests skip when the variable is
// unset so a live database is never touched.
func setupPostingTest(t *testing.T) *postingFixture {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.Exec(`TRUNCATE TABLE transactions, payments, receipts, bill_counters,
		accounts, fiscal_years, company_memberships, companies, user_settings, users CASCADE`).Error; err != nil {
		t.Fatalf("failed to clean test database: %v", err)
	}

	user := &entity.User{FirstName: "Test", LastName: "User", Email: "test@example.com", Password: "irrelevant"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	company := &entity.Company{
		Name:     "Test Traders",
		Slug:     "test-traders",
		OwnerID:  user.ID,
		Settings: entity.DefaultCompanySettings(),
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}

	fy := &entity.FiscalYear{
		CompanyID:    company.ID,
		Name:         "2082/83",
		StartDate:    time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
		BillPrefixes: entity.DefaultBillPrefixes(),
	}
	if err := db.Create(fy).Error; err != nil {
		t.Fatalf("failed to seed fiscal year: %v", err)
	}

	party := &entity.Account{
		CompanyID:      company.ID,
		Name:           "Acme Supplies",
		Code:           "S-001",
		Group:          enum.AccountGroupParty,
		OpeningBalance: dec("500"),
		IsActive:       true,
	}
	cash := &entity.Account{
		CompanyID: company.ID,
		Name:      "Cash in Hand",
		Code:      "C-001",
		Group:     enum.AccountGroupCash,
		IsActive:  true,
	}
	if err := db.Create(party).Error; err != nil {
		t.Fatalf("failed to seed party account: %v", err)
	}
	if err := db.Create(cash).Error; err != nil {
		t.Fatalf("failed to seed cash account: %v", err)
	}

	return &postingFixture{
		db:      db,
		ctx:     infraRepo.WithCompany(context.Background(), company.ID),
		user:    user,
		company: company,
		fy:      fy,
		party:   party,
		cash:    cash,
	}
}

func (f *postingFixture) paymentService() *PaymentService {
	return NewPaymentService(
		infraRepo.NewTransactor(f.db),
		infraRepo.NewPaymentRepository(f.db),
		infraRepo.NewAccountRepository(f.db),
		infraRepo.NewTransactionRepository(f.db),
		infraRepo.NewFiscalYearRepository(f.db),
		NewNumberingService(infraRepo.NewBillCounterRepository(f.db)),
	)
}

func TestPaymentPostingChainsBalances(t *testing.T) {
	f := setupPostingTest(t)
	svc := f.paymentService()

	first, err := svc.CreatePayment(f.ctx, &CreatePaymentInput{
		UserID:        f.user.ID,
		AccountID:     f.party.ID,
		CashAccountID: f.cash.ID,
		Date:          time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Mode:          enum.PaymentModeCash,
		Amount:        dec("150"),
		Description:   "settling january dues",
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}
	if first.BillNumber != "PYMT0000001" {
		t.Errorf("first bill number = %q, want PYMT0000001", first.BillNumber)
	}

	second, err := svc.CreatePayment(f.ctx, &CreatePaymentInput{
		UserID:        f.user.ID,
		AccountID:     f.party.ID,
		CashAccountID: f.cash.ID,
		Date:          time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		Mode:          enum.PaymentModeBank,
		Amount:        dec("50"),
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}
	if second.BillNumber != "PYMT0000002" {
		t.Errorf("second bill number = %q, want PYMT0000002", second.BillNumber)
	}

	txnRepo := infraRepo.NewTransactionRepository(f.db)

	// Party opened at 500, debited 150 then 50.
	balance, found, err := txnRepo.LatestBalance(f.ctx, f.party.ID)
	if err != nil || !found {
		t.Fatalf("LatestBalance(party) = found %v, err %v", found, err)
	}
	if !balance.Equal(dec("700")) {
		t.Errorf("party balance = %s, want 700", balance)
	}

	// Cash opened at zero and was credited both amounts.
	balance, found, err = txnRepo.LatestBalance(f.ctx, f.cash.ID)
	if err != nil || !found {
		t.Fatalf("LatestBalance(cash) = found %v, err %v", found, err)
	}
	if !balance.Equal(dec("-200")) {
		t.Errorf("cash balance = %s, want -200", balance)
	}
}

func TestSameDayPostingsChainInOrder(t *testing.T) {
	f := setupPostingTest(t)
	svc := f.paymentService()
	txnRepo := infraRepo.NewTransactionRepository(f.db)

	// Several postings on one date force the chain onto its tie-break:
	// created_at can collide at database precision, the sequence cannot.
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	amounts := []string{"10", "20", "30", "40"}
	for _, amount := range amounts {
		if _, err := svc.CreatePayment(f.ctx, &CreatePaymentInput{
			UserID:        f.user.ID,
			AccountID:     f.party.ID,
			CashAccountID: f.cash.ID,
			Date:          date,
			Mode:          enum.PaymentModeCash,
			Amount:        dec(amount),
		}); err != nil {
			t.Fatalf("CreatePayment() error = %v", err)
		}
	}

	balance, found, err := txnRepo.LatestBalance(f.ctx, f.party.ID)
	if err != nil || !found {
		t.Fatalf("LatestBalance(party) = found %v, err %v", found, err)
	}
	if !balance.Equal(dec("600")) {
		t.Errorf("party balance = %s, want 600 after chaining all same-day debits", balance)
	}

	entries, _, err := txnRepo.ListByAccount(f.ctx, f.party.ID, &repository.LedgerFilterParams{
		Pagination: pagination.DefaultPagination(),
	})
	if err != nil {
		t.Fatalf("ListByAccount() error = %v", err)
	}
	if len(entries) != len(amounts) {
		t.Fatalf("got %d entries, want %d", len(entries), len(amounts))
	}
	wantBalances := []string{"510", "530", "560", "600"}
	for i, e := range entries {
		if !e.Balance.Equal(dec(wantBalances[i])) {
			t.Errorf("entry %d balance = %s, want %s", i, e.Balance, wantBalances[i])
		}
	}
}

func TestCancelAndReactivatePayment(t *testing.T) {
	f := setupPostingTest(t)
	svc := f.paymentService()
	txnRepo := infraRepo.NewTransactionRepository(f.db)

	payment, err := svc.CreatePayment(f.ctx, &CreatePaymentInput{
		UserID:        f.user.ID,
		AccountID:     f.party.ID,
		CashAccountID: f.cash.ID,
		Date:          time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Mode:          enum.PaymentModeCash,
		Amount:        dec("80"),
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}

	if err := svc.CancelPayment(f.ctx, payment.ID); err != nil {
		t.Fatalf("CancelPayment() error = %v", err)
	}

	got, err := svc.GetPayment(f.ctx, payment.ID)
	if err != nil {
		t.Fatalf("GetPayment() error = %v", err)
	}
	if got.IsActive {
		t.Error("canceled payment still active")
	}

	// Canceled entries leave the chain, so the only entries vanish.
	if _, found, err := txnRepo.LatestBalance(f.ctx, f.party.ID); err != nil || found {
		t.Errorf("LatestBalance after cancel = found %v, err %v, want no active entries", found, err)
	}

	// Canceling twice is rejected.
	if err := svc.CancelPayment(f.ctx, payment.ID); err == nil {
		t.Error("expected error canceling an already canceled payment")
	}

	// The consumed bill number is never reissued.
	next, err := svc.CreatePayment(f.ctx, &CreatePaymentInput{
		UserID:        f.user.ID,
		AccountID:     f.party.ID,
		CashAccountID: f.cash.ID,
		Date:          time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		Mode:          enum.PaymentModeCash,
		Amount:        dec("20"),
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}
	if next.BillNumber != "PYMT0000002" {
		t.Errorf("bill number after cancel = %q, want PYMT0000002", next.BillNumber)
	}

	if err := svc.ReactivatePayment(f.ctx, payment.ID); err != nil {
		t.Fatalf("ReactivatePayment() error = %v", err)
	}
	got, err = svc.GetPayment(f.ctx, payment.ID)
	if err != nil {
		t.Fatalf("GetPayment() error = %v", err)
	}
	if !got.IsActive {
		t.Error("reactivated payment still inactive")
	}
}

func TestBillCounterConcurrentIncrements(t *testing.T) {
	f := setupPostingTest(t)
	counterRepo := infraRepo.NewBillCounterRepository(f.db)

	const workers = 8
	const perWorker = 5

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				value, err := counterRepo.Increment(f.ctx, f.company.ID, f.fy.ID, enum.VoucherTypeSales)
				if err != nil {
					errs <- err
					return
				}
				mu.Lock()
				seen[value] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Increment() error = %v", err)
	}

	if len(seen) != workers*perWorker {
		t.Fatalf("got %d distinct values, want %d", len(seen), workers*perWorker)
	}
	for v := int64(1); v <= workers*perWorker; v++ {
		if !seen[v] {
			t.Errorf("missing counter value %d", v)
		}
	}
}

func TestCounterIsScopedPerVoucherType(t *testing.T) {
	f := setupPostingTest(t)
	counterRepo := infraRepo.NewBillCounterRepository(f.db)

	for i := int64(1); i <= 3; i++ {
		value, err := counterRepo.Increment(f.ctx, f.company.ID, f.fy.ID, enum.VoucherTypeSales)
		if err != nil {
			t.Fatalf("Increment(sales) error = %v", err)
		}
		if value != i {
			t.Errorf("sales counter = %d, want %d", value, i)
		}
	}

	value, err := counterRepo.Increment(f.ctx, f.company.ID, f.fy.ID, enum.VoucherTypePurchase)
	if err != nil {
		t.Fatalf("Increment(purchase) error = %v", err)
	}
	if value != 1 {
		t.Errorf("purchase counter = %d, want 1 for its own sequence", value)
	}
}
