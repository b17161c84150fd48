package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateKey},
		{"pgx serialization failure", &pgconn.PgError{Code: "40001"}, ErrSerializationRetry},
		{"pgx deadlock", &pgconn.PgError{Code: "40P01"}, ErrSerializationRetry},
		{"pq unique violation", &pq.Error{Code: "23505"}, ErrDuplicateKey},
		{"pq serialization failure", &pq.Error{Code: "40001"}, ErrSerializationRetry},
		{"unrelated pg error is kept", &pgconn.PgError{Code: "22003"}, nil},
		{"plain error is kept", fmt.Errorf("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyPgError(tt.err)
			if tt.want == nil {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrSerializationRetry))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", ErrSerializationRetry)))
	assert.False(t, IsRetryable(ErrInsufficientFunds))
	assert.False(t, IsRetryable(nil))
}
