package wallet

import (
	"context"
	"time"
)

// Cache is the subset of the cache service this package touches.
type Cache interface {
	InvalidateWallet(ctx context.Context, studentID, walletID uint) error
}

// MetricsCollector records wallet operation outcomes. A nil collector
// is replaced with a no-op at construction.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(txType string, amount float64)
	RecordError(operation, errType string)
}
