package repositories

import (
	"github.com/shopspring/decimal"

	"printdesk/internal/models"
)

// WalletRepository is the settlement engine's store. Everything a single
// atomic unit of work touches (wallet row, ledger entry, printing
// request) goes through one instance, so ExecuteInTransaction can hand
// out a transaction-scoped copy.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	GetByStudentID(studentID uint) (*models.Wallet, error)

	// GetByStudentIDForUpdate reads the wallet under a row lock. Only
	// meaningful inside ExecuteInTransaction; the lock is held until
	// commit or rollback.
	GetByStudentIDForUpdate(studentID uint) (*models.Wallet, error)
	GetByIDForUpdate(id uint) (*models.Wallet, error)

	// ApplyDelta adjusts the balance by delta (positive credit,
	// negative debit) with a guard that refuses to take the balance
	// negative. Returns ErrInsufficientFunds when the guard trips.
	ApplyDelta(walletID uint, delta decimal.Decimal) (decimal.Decimal, error)

	// MarkTopUp stamps the wallet's last successful top-up time.
	MarkTopUp(walletID uint) error

	// Ledger entries are insert-only. No update or delete exists.
	CreateTransaction(entry *models.Transaction) error
	CreatePrintingRequest(req *models.PrintingRequest) error

	ExecuteInTransaction(fn func(WalletRepository) error) error
}
