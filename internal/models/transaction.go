package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds
const (
	TransactionTypeTopup        = "TOPUP"
	TransactionTypePrintPayment = "PRINT_PAYMENT"
	TransactionTypeRefund       = "REFUND"
)

// Transaction statuses
const (
	TransactionStatusSuccess = "SUCCESS"
	TransactionStatusFailed  = "FAILED"
)

// Transaction is an immutable ledger entry. Rows are only ever inserted;
// the repository layer exposes no update or delete for them. Amount is
// signed: credits are positive, debits negative, so summing a wallet's
// entries in commit order reproduces its balance.
type Transaction struct {
	ID        uint            `gorm:"primarykey"`
	WalletID  uint            `gorm:"index;not null"`
	StudentID uint            `gorm:"index;not null"` // Denormalized for audit queries
	Type      string          `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reference string          `gorm:"uniqueIndex;not null"`
	Status    string          `gorm:"not null;default:'SUCCESS'"`
	CreatedAt time.Time
}

// IsCredit reports whether the entry increased the wallet balance.
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
