package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"printdesk/internal/models"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", classifyPgError(err))
	}
	return nil
}

func (r *walletRepository) GetByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByStudentID(studentID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("student_id = ?", studentID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByStudentIDForUpdate(studentID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ?", studentID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", classifyPgError(err))
	}
	return &wallet, nil
}

func (r *walletRepository) GetByIDForUpdate(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&wallet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", classifyPgError(err))
	}
	return &wallet, nil
}

// ApplyDelta uses a guarded UPDATE so the non-negative invariant is
// enforced by the database even if a caller skipped the locked read.
func (r *walletRepository) ApplyDelta(walletID uint, delta decimal.Decimal) (decimal.Decimal, error) {
	res := r.db.Model(&models.Wallet{}).
		Where("id = ? AND balance + ? >= 0", walletID, delta).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return decimal.Zero, fmt.Errorf("failed to apply delta: %w", classifyPgError(res.Error))
	}
	if res.RowsAffected == 0 {
		// Guard refused: either no such wallet or the debit would
		// overdraw. Distinguish for the caller.
		if _, err := r.GetByID(walletID); err != nil {
			return decimal.Zero, err
		}
		return decimal.Zero, ErrInsufficientFunds
	}

	wallet, err := r.GetByID(walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (r *walletRepository) MarkTopUp(walletID uint) error {
	now := time.Now()
	res := r.db.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("last_top_up", now)
	if res.Error != nil {
		return fmt.Errorf("failed to mark top-up: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) CreateTransaction(entry *models.Transaction) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", classifyPgError(err))
	}
	return nil
}

func (r *walletRepository) CreatePrintingRequest(req *models.PrintingRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create printing request: %w", classifyPgError(err))
	}
	return nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
	return classifyPgError(err)
}
