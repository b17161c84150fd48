// Package reference generates the unique reference numbers stamped on
// ledger entries. References are random UUIDs behind a kind prefix, so
// concurrent callers in the same clock tick can never collide the way a
// timestamp-derived scheme would.
package reference

import (
	"fmt"

	"github.com/google/uuid"

	"printdesk/internal/models"
)

// Generator produces globally unique, never-reused reference numbers.
type Generator interface {
	Next(transactionType string) string
}

type uuidGenerator struct{}

func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) Next(transactionType string) string {
	return fmt.Sprintf("%s-%s", prefixFor(transactionType), uuid.NewString())
}

func prefixFor(transactionType string) string {
	switch transactionType {
	case models.TransactionTypeTopup:
		return "TOP"
	case models.TransactionTypePrintPayment:
		return "PAY"
	case models.TransactionTypeRefund:
		return "REF"
	}
	return "TXN"
}
