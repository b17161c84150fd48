package repositories

import (
	"context"

	"printdesk/internal/models"
)

// TransactionRepository serves the read-only ledger projections. There
// is deliberately no way to mutate a ledger entry here.
type TransactionRepository interface {
	// ListByWallet returns entries for a wallet in commit order
	// (ascending id), so replaying the signed amounts reproduces the
	// balance.
	ListByWallet(ctx context.Context, walletID uint, limit, offset int) ([]models.Transaction, error)
	ListByStudent(ctx context.Context, studentID uint, limit, offset int) ([]models.Transaction, error)
	CountByWallet(ctx context.Context, walletID uint) (int64, error)
}
