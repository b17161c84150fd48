package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
)

type fakeAccountRepo struct {
	students map[string]*models.Student // by student number
	emails   map[string]struct{}
	nextID   uint
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		students: make(map[string]*models.Student),
		emails:   make(map[string]struct{}),
		nextID:   1,
	}
}

func (f *fakeAccountRepo) CreateWithWallet(student *models.Student) error {
	if _, ok := f.students[student.StudentNumber]; ok {
		return repositories.ErrDuplicateKey
	}
	if _, ok := f.emails[student.Email]; ok {
		return repositories.ErrDuplicateKey
	}
	student.ID = f.nextID
	student.Wallet = &models.Wallet{ID: f.nextID, StudentID: f.nextID, Balance: decimal.Zero}
	f.nextID++
	f.students[student.StudentNumber] = student
	f.emails[student.Email] = struct{}{}
	return nil
}

func (f *fakeAccountRepo) GetByID(id uint) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeAccountRepo) GetByStudentNumber(number string) (*models.Student, error) {
	if s, ok := f.students[number]; ok {
		return s, nil
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeAccountRepo) UpdateProfile(id uint, profile models.Profile) error {
	return nil
}

type fakeWalletRepo struct {
	wallets map[uint]*models.Wallet // by student id
}

func (f *fakeWalletRepo) GetByStudentID(studentID uint) (*models.Wallet, error) {
	if w, ok := f.wallets[studentID]; ok {
		return w, nil
	}
	return nil, repositories.ErrWalletNotFound
}

func (f *fakeWalletRepo) Create(*models.Wallet) error                            { return nil }
func (f *fakeWalletRepo) GetByID(uint) (*models.Wallet, error)                   { return nil, repositories.ErrWalletNotFound }
func (f *fakeWalletRepo) GetByStudentIDForUpdate(id uint) (*models.Wallet, error) { return f.GetByStudentID(id) }
func (f *fakeWalletRepo) GetByIDForUpdate(uint) (*models.Wallet, error)          { return nil, repositories.ErrWalletNotFound }
func (f *fakeWalletRepo) ApplyDelta(uint, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeWalletRepo) MarkTopUp(uint) error                              { return nil }
func (f *fakeWalletRepo) CreateTransaction(*models.Transaction) error       { return nil }
func (f *fakeWalletRepo) CreatePrintingRequest(*models.PrintingRequest) error { return nil }
func (f *fakeWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(f)
}

type fakeCache struct {
	values map[string]Balance
	hits   int
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if b, ok := f.values[key]; ok {
		f.hits++
		*dest.(*Balance) = b
		return true, nil
	}
	return false, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}) error {
	if f.values == nil {
		f.values = make(map[string]Balance)
	}
	f.values[key] = value.(Balance)
	return nil
}

func (f *fakeCache) BalanceKey(studentID uint) string {
	return "balance-key"
}

func input() CreateAccountInput {
	return CreateAccountInput{
		StudentNumber:  "S000123",
		FullName:       "Ada Lovelace",
		Email:          "ada@campus.test",
		CredentialHash: "$2a$10$abcdefghijklmnopqrstuv",
		Department:     "Mathematics",
	}
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, &fakeWalletRepo{}, nil)

	student, err := svc.CreateAccount(context.Background(), input())
	require.NoError(t, err)
	require.NotNil(t, student.Wallet, "wallet must be created with the account")
	assert.True(t, student.Wallet.Balance.IsZero())
}

func TestCreateAccount_Duplicate(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, &fakeWalletRepo{}, nil)

	_, err := svc.CreateAccount(context.Background(), input())
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), input())
	require.ErrorIs(t, err, domain.ErrDuplicateStudent)
}

func TestCreateAccount_MissingFields(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), &fakeWalletRepo{}, nil)

	in := input()
	in.Email = ""
	_, err := svc.CreateAccount(context.Background(), in)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "INVALID_REQUEST", derr.Code)
}

func TestGetBalance(t *testing.T) {
	wallets := &fakeWalletRepo{wallets: map[uint]*models.Wallet{
		5: {ID: 9, StudentID: 5, Balance: decimal.RequireFromString("42.00")},
	}}
	svc := NewService(newFakeAccountRepo(), wallets, nil)

	balance, err := svc.GetBalance(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 9, balance.WalletID)
	assert.Equal(t, "42.00", balance.Balance.StringFixed(2))
}

func TestGetBalance_WalletMissing(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), &fakeWalletRepo{}, nil)

	_, err := svc.GetBalance(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestGetBalance_CacheHit(t *testing.T) {
	cache := &fakeCache{}
	wallets := &fakeWalletRepo{wallets: map[uint]*models.Wallet{
		5: {ID: 9, StudentID: 5, Balance: decimal.RequireFromString("42.00")},
	}}
	svc := NewService(newFakeAccountRepo(), wallets, cache)

	_, err := svc.GetBalance(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, cache.hits, "first read misses")

	_, err = svc.GetBalance(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits, "second read served from cache")
}
