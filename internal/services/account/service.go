// Package account manages student records and their prepaid wallets.
// An account and its wallet are created together or not at all.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
)

// CreateAccountInput carries everything needed to open an account. The
// credential hash comes from the identity provider already hashed; this
// service never sees a plaintext password.
type CreateAccountInput struct {
	StudentNumber  string
	FullName       string
	Email          string
	CredentialHash string
	Department     string
}

// Balance is the wallet-balance projection returned to callers.
type Balance struct {
	WalletID uint            `json:"wallet_id"`
	Balance  decimal.Decimal `json:"balance"`
}

type Service interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*models.Student, error)
	GetStudent(ctx context.Context, studentID uint) (*models.Student, error)
	GetBalance(ctx context.Context, studentID uint) (Balance, error)
}

// Cache is the subset of the cache service the account service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	BalanceKey(studentID uint) string
}

type service struct {
	accounts repositories.AccountRepository
	wallets  repositories.WalletRepository
	cache    Cache
}

func NewService(accounts repositories.AccountRepository, wallets repositories.WalletRepository, cache Cache) Service {
	if accounts == nil {
		panic("account repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	return &service{accounts: accounts, wallets: wallets, cache: cache}
}

func (s *service) CreateAccount(ctx context.Context, input CreateAccountInput) (*models.Student, error) {
	if input.StudentNumber == "" || input.Email == "" || input.FullName == "" {
		return nil, domain.New("INVALID_REQUEST", "student number, name and email are required")
	}

	student := &models.Student{
		StudentNumber:  input.StudentNumber,
		FullName:       input.FullName,
		Email:          input.Email,
		CredentialHash: input.CredentialHash,
		Department:     input.Department,
	}

	if err := s.accounts.CreateWithWallet(student); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, domain.ErrDuplicateStudent
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return student, nil
}

func (s *service) GetStudent(ctx context.Context, studentID uint) (*models.Student, error) {
	student, err := s.accounts.GetByID(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, domain.New("STUDENT_NOT_FOUND", "student not found")
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetBalance reads through the cache. Wallets are created with the
// account, so a missing wallet for an existing student is a
// data-integrity problem, not a normal miss.
func (s *service) GetBalance(ctx context.Context, studentID uint) (Balance, error) {
	if s.cache != nil {
		var cached Balance
		if hit, err := s.cache.Get(ctx, s.cache.BalanceKey(studentID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	wallet, err := s.wallets.GetByStudentID(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return Balance{}, domain.ErrWalletNotFound
		}
		return Balance{}, fmt.Errorf("failed to get balance: %w", err)
	}

	balance := Balance{WalletID: wallet.ID, Balance: wallet.Balance}
	if s.cache != nil {
		_ = s.cache.Set(ctx, s.cache.BalanceKey(studentID), balance)
	}
	return balance, nil
}
