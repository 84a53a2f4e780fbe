package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dialError(reason string) error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New(reason)}
}

func TestStoreGuard_WrapsTransportErrors(t *testing.T) {
	guard := NewStoreGuard(DefaultStoreGuardConfig())
	transport := dialError("connection refused")

	err := guard.Run("list accounts", func() error { return transport })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, transport)
	assert.Contains(t, err.Error(), "failed to list accounts")
	assert.Equal(t, StateClosed, guard.State())
}

func TestStoreGuard_AnswersAreNotFailures(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1})

	err := guard.Run("get account", func() error { return gorm.ErrRecordNotFound })
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	err = guard.Run("delete account", func() error { return ErrAccountNotFound })
	assert.ErrorIs(t, err, ErrAccountNotFound)

	err = guard.Run("list accounts", func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	assert.Equal(t, StateClosed, guard.State())
}

func TestStoreGuard_ClassifiesTransportFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "bad connection", err: driver.ErrBadConn},
		{name: "network", err: dialError("connection reset by peer")},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006", Message: "connection failure"}},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"}},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300", Message: "too many connections"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 1, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})

			err := guard.Run("list accounts", func() error { return tt.err })

			assert.ErrorIs(t, err, ErrStoreUnavailable)
			assert.Equal(t, StateOpen, guard.State())
		})
	}
}

func TestStoreGuard_ConstraintViolationsKeepBreakerClosed(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 5, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})
	violation := &pgconn.PgError{
		Code:           "23503",
		Message:        `insert or update on table "transactions" violates foreign key constraint`,
		ConstraintName: "fk_transactions_account",
	}

	for i := 0; i < 5; i++ {
		err := guard.Run("create transaction", func() error { return violation })

		assert.ErrorIs(t, err, ErrConstraintViolation)
		assert.NotErrorIs(t, err, ErrStoreUnavailable)
	}
	for _, translated := range []error{gorm.ErrForeignKeyViolated, gorm.ErrDuplicatedKey} {
		err := guard.Run("create transaction", func() error { return translated })
		assert.ErrorIs(t, err, ErrConstraintViolation)
	}
	assert.Equal(t, StateClosed, guard.State())

	assert.NoError(t, guard.Run("list accounts", func() error { return nil }))
}

func TestStoreGuard_OtherErrorsPassThrough(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 1, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})

	for _, err := range []error{context.DeadlineExceeded, errors.New("unsupported data type")} {
		got := guard.Run("list accounts", func() error { return err })

		assert.ErrorIs(t, got, err)
		assert.NotErrorIs(t, got, ErrStoreUnavailable)
	}
	assert.Equal(t, StateClosed, guard.State())
}

func TestStoreGuard_OpensAndFailsFast(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 2, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})
	failing := func() error { return dialError("i/o timeout") }

	_ = guard.Run("list", failing)
	_ = guard.Run("list", failing)
	require.Equal(t, StateOpen, guard.State())

	called := false
	err := guard.Run("list", func() error {
		called = true
		return nil
	})

	assert.False(t, called, "open breaker must not reach the store")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestStoreGuard_HalfOpenRecovery(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 1, ResetTimeout: 20 * time.Millisecond, HalfOpenMaxSucc: 2})

	_ = guard.Run("list", func() error { return dialError("broken pipe") })
	require.Equal(t, StateOpen, guard.State())

	time.Sleep(30 * time.Millisecond)

	require.NoError(t, guard.Run("list", func() error { return nil }))
	assert.Equal(t, StateHalfOpen, guard.State())

	require.NoError(t, guard.Run("list", func() error { return nil }))
	assert.Equal(t, StateClosed, guard.State())
}

func TestStoreGuard_HalfOpenFailureReopens(t *testing.T) {
	guard := NewStoreGuard(StoreGuardConfig{MaxFailures: 1, ResetTimeout: 20 * time.Millisecond, HalfOpenMaxSucc: 2})

	_ = guard.Run("list", func() error { return dialError("broken pipe") })
	time.Sleep(30 * time.Millisecond)

	err := guard.Run("list", func() error { return dialError("broken pipe") })
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, StateOpen, guard.State())

	guard.Reset()
	assert.Equal(t, StateClosed, guard.State())
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(42).String())
}
