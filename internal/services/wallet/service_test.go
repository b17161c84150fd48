package wallet

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
	"printdesk/internal/services/reference"
)

// fakeRepo is an in-memory WalletRepository with transactional
// semantics: a unit of work runs on a staged copy under one mutex and
// commits only on success.
type fakeRepo struct {
	mu      sync.Mutex
	wallets map[uint]*models.Wallet
	entries []models.Transaction
	nextID  uint
	inTx    bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{wallets: make(map[uint]*models.Wallet), nextID: 1}
}

func (f *fakeRepo) addWallet(studentID uint, balance string) *models.Wallet {
	w := &models.Wallet{
		ID:        f.nextID,
		StudentID: studentID,
		Balance:   decimal.RequireFromString(balance),
	}
	f.nextID++
	f.wallets[w.ID] = w
	return w
}

func (f *fakeRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tx := &fakeRepo{
		wallets: make(map[uint]*models.Wallet, len(f.wallets)),
		entries: append([]models.Transaction(nil), f.entries...),
		nextID:  f.nextID,
		inTx:    true,
	}
	for id, w := range f.wallets {
		wc := *w
		tx.wallets[id] = &wc
	}

	if err := fn(tx); err != nil {
		return err
	}
	f.wallets = tx.wallets
	f.entries = tx.entries
	f.nextID = tx.nextID
	return nil
}

func (f *fakeRepo) lock() func() {
	if f.inTx {
		return func() {}
	}
	f.mu.Lock()
	return f.mu.Unlock
}

func (f *fakeRepo) Create(w *models.Wallet) error {
	defer f.lock()()
	w.ID = f.nextID
	f.nextID++
	f.wallets[w.ID] = w
	return nil
}

func (f *fakeRepo) GetByID(id uint) (*models.Wallet, error) {
	defer f.lock()()
	w, ok := f.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	wc := *w
	return &wc, nil
}

func (f *fakeRepo) GetByStudentID(studentID uint) (*models.Wallet, error) {
	defer f.lock()()
	for _, w := range f.wallets {
		if w.StudentID == studentID {
			wc := *w
			return &wc, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (f *fakeRepo) GetByStudentIDForUpdate(studentID uint) (*models.Wallet, error) {
	return f.GetByStudentID(studentID)
}

func (f *fakeRepo) GetByIDForUpdate(id uint) (*models.Wallet, error) {
	return f.GetByID(id)
}

func (f *fakeRepo) ApplyDelta(walletID uint, delta decimal.Decimal) (decimal.Decimal, error) {
	defer f.lock()()
	w, ok := f.wallets[walletID]
	if !ok {
		return decimal.Zero, repositories.ErrWalletNotFound
	}
	next := w.Balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, repositories.ErrInsufficientFunds
	}
	w.Balance = next
	return next, nil
}

func (f *fakeRepo) MarkTopUp(walletID uint) error {
	defer f.lock()()
	if _, ok := f.wallets[walletID]; !ok {
		return repositories.ErrWalletNotFound
	}
	return nil
}

func (f *fakeRepo) CreateTransaction(entry *models.Transaction) error {
	defer f.lock()()
	entry.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeRepo) CreatePrintingRequest(req *models.PrintingRequest) error {
	defer f.lock()()
	return nil
}

type fakeTxRepo struct{ store *fakeRepo }

func (f *fakeTxRepo) ListByWallet(_ context.Context, walletID uint, limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, e := range f.store.entries {
		if e.WalletID == walletID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTxRepo) ListByStudent(_ context.Context, studentID uint, limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, e := range f.store.entries {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTxRepo) CountByWallet(_ context.Context, walletID uint) (int64, error) {
	entries, _ := f.ListByWallet(context.Background(), walletID, 0, 0)
	return int64(len(entries)), nil
}

func newTestService(repo *fakeRepo) Service {
	return NewService(repo, &fakeTxRepo{store: repo}, reference.NewGenerator(), nil, nil)
}

func TestTopUp(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"successful top-up", "20.00", nil},
		{"zero amount", "0", domain.ErrInvalidAmount},
		{"negative amount", "-5.00", domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.addWallet(1, "5.00")
			svc := newTestService(repo)

			entry, err := svc.TopUp(context.Background(), 1, decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.entries)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.TransactionTypeTopup, entry.Type)
			assert.Equal(t, "20.00", entry.Amount.StringFixed(2))

			w, _ := repo.GetByStudentID(1)
			assert.Equal(t, "25.00", w.Balance.StringFixed(2))
		})
	}
}

func TestTopUp_WalletNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.TopUp(context.Background(), 99, decimal.RequireFromString("10.00"))
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

// Refund of 10.00 against balance B leaves B+10.00 and exactly one new
// Refund ledger entry.
func TestRefund_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	w := repo.addWallet(1, "37.50")
	svc := newTestService(repo)

	entry, err := svc.Refund(context.Background(), w.ID, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeRefund, entry.Type)
	assert.Equal(t, "10.00", entry.Amount.StringFixed(2))

	updated, _ := repo.GetByID(w.ID)
	assert.Equal(t, "47.50", updated.Balance.StringFixed(2))

	var refunds int
	for _, e := range repo.entries {
		if e.Type == models.TransactionTypeRefund {
			refunds++
		}
	}
	assert.Equal(t, 1, refunds)
}

func TestRefund_UnknownWallet(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Refund(context.Background(), 12, decimal.RequireFromString("10.00"))
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestRefund_InvalidAmount(t *testing.T) {
	repo := newFakeRepo()
	w := repo.addWallet(1, "5.00")
	svc := newTestService(repo)

	_, err := svc.Refund(context.Background(), w.ID, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, repo.entries)
}

// Ledger completeness: initial balance plus the signed entry amounts
// always equals the current balance.
func TestLedgerMatchesBalance(t *testing.T) {
	repo := newFakeRepo()
	w := repo.addWallet(1, "0")
	svc := newTestService(repo)

	initial := w.Balance
	amounts := []string{"10.00", "2.50", "40.00", "0.10"}
	for _, a := range amounts {
		_, err := svc.TopUp(context.Background(), 1, decimal.RequireFromString(a))
		require.NoError(t, err)
	}
	_, err := svc.Refund(context.Background(), w.ID, decimal.RequireFromString("3.75"))
	require.NoError(t, err)

	sum := decimal.Zero
	for _, e := range repo.entries {
		sum = sum.Add(e.Amount)
	}

	current, _ := repo.GetByID(w.ID)
	assert.True(t, initial.Add(sum).Equal(current.Balance),
		"ledger sum %s + initial %s != balance %s", sum, initial, current.Balance)
}

func TestGetBalance(t *testing.T) {
	repo := newFakeRepo()
	w := repo.addWallet(7, "12.34")
	svc := newTestService(repo)

	walletID, balance, err := svc.GetBalance(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, w.ID, walletID)
	assert.Equal(t, "12.34", balance.StringFixed(2))
}

func TestListTransactionHistory(t *testing.T) {
	repo := newFakeRepo()
	repo.addWallet(1, "0")
	svc := newTestService(repo)

	for i := 0; i < 4; i++ {
		_, err := svc.TopUp(context.Background(), 1, decimal.RequireFromString("1.00"))
		require.NoError(t, err)
	}

	entries, err := svc.ListTransactionHistory(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
