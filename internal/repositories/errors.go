package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Sentinel errors returned by the repository layer. Services translate
// them into domain errors at their own boundary.
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrRequestNotFound    = errors.New("printing request not found")
	ErrRuleNotFound       = errors.New("pricing rule not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrSerializationRetry = errors.New("serialization conflict, retryable")
)

// Postgres error classes we care about.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// classifyPgError maps driver-level Postgres errors onto repository
// sentinels. Both pgx (the gorm driver) and lib/pq error types are
// handled so the mapping survives a driver swap.
func classifyPgError(err error) error {
	if err == nil {
		return nil
	}

	var code string
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return err
	}

	switch code {
	case pgUniqueViolation:
		return ErrDuplicateKey
	case pgSerializationFailure, pgDeadlockDetected:
		return ErrSerializationRetry
	}
	return err
}

// IsRetryable reports whether the error is a transient concurrency
// conflict worth retrying with a fresh transaction.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSerializationRetry)
}
