package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
	"printdesk/internal/services/reference"
)

// Service is the top-up / refund handler.
type Service interface {
	TopUp(ctx context.Context, studentID uint, amount decimal.Decimal) (*models.Transaction, error)
	Refund(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Transaction, error)
	GetBalance(ctx context.Context, studentID uint) (uint, decimal.Decimal, error)
	ListTransactionHistory(ctx context.Context, studentID uint, limit, offset int) ([]models.Transaction, error)
}

type service struct {
	repo    repositories.WalletRepository
	txRepo  repositories.TransactionRepository
	refs    reference.Generator
	cache   Cache
	metrics MetricsCollector
}

// NewService creates a new wallet service
func NewService(
	repo repositories.WalletRepository,
	txRepo repositories.TransactionRepository,
	refs reference.Generator,
	cache Cache,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if txRepo == nil {
		panic("transaction repository is required")
	}
	if refs == nil {
		refs = reference.NewGenerator()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		txRepo:  txRepo,
		refs:    refs,
		cache:   cache,
		metrics: metrics,
	}
}

// TopUp credits the wallet, stamps the last-top-up time and appends the
// Top-up ledger entry, all in one transaction.
func (s *service) TopUp(ctx context.Context, studentID uint, amount decimal.Decimal) (*models.Transaction, error) {
	started := time.Now()
	if !amount.IsPositive() {
		s.metrics.RecordError("top_up", "invalid_amount")
		return nil, domain.ErrInvalidAmount
	}

	var entry *models.Transaction
	var walletID uint
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByStudentIDForUpdate(studentID)
		if err != nil {
			return err
		}
		walletID = wallet.ID

		if _, err := tx.ApplyDelta(wallet.ID, amount); err != nil {
			return err
		}
		if err := tx.MarkTopUp(wallet.ID); err != nil {
			return err
		}

		entry = &models.Transaction{
			WalletID:  wallet.ID,
			StudentID: studentID,
			Type:      models.TransactionTypeTopup,
			Amount:    amount,
			Reference: s.refs.Next(models.TransactionTypeTopup),
			Status:    models.TransactionStatusSuccess,
		}
		return tx.CreateTransaction(entry)
	})
	if err != nil {
		s.metrics.RecordError("top_up", err.Error())
		return nil, s.translate(err)
	}

	s.invalidate(ctx, studentID, walletID)
	s.metrics.RecordTransaction("top_up", amount.InexactFloat64())
	s.metrics.RecordOperationDuration("top_up", time.Since(started))
	return entry, nil
}

// Refund credits the owning wallet. The ledger entry is inserted first
// and the balance credit follows, both inside one transaction, so a
// failure at either step rolls back the pair.
func (s *service) Refund(ctx context.Context, walletID uint, amount decimal.Decimal) (*models.Transaction, error) {
	started := time.Now()
	if !amount.IsPositive() {
		s.metrics.RecordError("refund", "invalid_amount")
		return nil, domain.ErrInvalidAmount
	}

	var entry *models.Transaction
	var studentID uint
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByIDForUpdate(walletID)
		if err != nil {
			return err
		}
		studentID = wallet.StudentID

		entry = &models.Transaction{
			WalletID:  wallet.ID,
			StudentID: wallet.StudentID,
			Type:      models.TransactionTypeRefund,
			Amount:    amount,
			Reference: s.refs.Next(models.TransactionTypeRefund),
			Status:    models.TransactionStatusSuccess,
		}
		if err := tx.CreateTransaction(entry); err != nil {
			return err
		}

		_, err = tx.ApplyDelta(wallet.ID, amount)
		return err
	})
	if err != nil {
		s.metrics.RecordError("refund", err.Error())
		return nil, s.translate(err)
	}

	s.invalidate(ctx, studentID, walletID)
	s.metrics.RecordTransaction("refund", amount.InexactFloat64())
	s.metrics.RecordOperationDuration("refund", time.Since(started))
	return entry, nil
}

func (s *service) GetBalance(ctx context.Context, studentID uint) (uint, decimal.Decimal, error) {
	wallet, err := s.repo.GetByStudentID(studentID)
	if err != nil {
		return 0, decimal.Zero, s.translate(err)
	}
	return wallet.ID, wallet.Balance, nil
}

func (s *service) ListTransactionHistory(ctx context.Context, studentID uint, limit, offset int) ([]models.Transaction, error) {
	entries, err := s.txRepo.ListByStudent(ctx, studentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction history: %w", err)
	}
	return entries, nil
}

func (s *service) invalidate(ctx context.Context, studentID, walletID uint) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateWallet(ctx, studentID, walletID)
}

func (s *service) translate(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound):
		return domain.ErrWalletNotFound
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return domain.ErrInsufficientFunds
	default:
		return err
	}
}
