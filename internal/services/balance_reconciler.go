package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceReconciler recomputes an account's cached balance from the
// transactions on either side of it. At most one reconciliation per account
// runs at a time in this process; the store's row lock orders writes across
// processes.
type BalanceReconciler struct {
	accounts     repositories.AccountRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	events       LedgerEventLoggerInterface
	metrics      MetricsRecorderInterface
	locks        *accountLocks
}

func NewBalanceReconciler(
	accounts repositories.AccountRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	events LedgerEventLoggerInterface,
	metrics MetricsRecorderInterface,
) BalanceReconcilerInterface {
	return &BalanceReconciler{
		accounts:     accounts,
		transactions: transactions,
		events:       events,
		metrics:      metrics,
		locks:        newAccountLocks(),
	}
}

// Reconcile writes Σ income − Σ expense ± transfer legs as the account's
// balance and returns it. A failed write leaves the balance stale and returns
// a *StaleBalanceError.
func (r *BalanceReconciler) Reconcile(ctx context.Context, userID, accountID uuid.UUID) (decimal.Decimal, error) {
	unlock := r.locks.lock(accountID)
	defer unlock()

	start := time.Now()
	r.events.LogReconciliationStarted(ctx, accountID)

	transactions, err := r.transactions.ListForAccount(ctx, userID, accountID)
	if err != nil {
		r.metrics.IncrementCounter("reconciliation", map[string]string{"status": "read_failed"})
		r.events.LogReconciliationFailed(ctx, accountID, "read", err.Error())
		return decimal.Zero, fmt.Errorf("failed to read transactions of account %s: %w", accountID, err)
	}

	balance := models.RoundAmount(models.SignedBalance(accountID, transactions))

	if err := r.accounts.UpdateBalance(ctx, userID, accountID, balance); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			r.events.LogReconciliationFailed(ctx, accountID, "write", err.Error())
			return decimal.Zero, fmt.Errorf("failed to reconcile account %s: %w", accountID, err)
		}

		r.metrics.IncrementCounter("reconciliation", map[string]string{"status": "write_failed"})
		r.events.LogStaleBalance(ctx, accountID, models.FormatAmount(balance), err.Error())
		return decimal.Zero, &StaleBalanceError{AccountID: accountID, Err: err}
	}

	duration := time.Since(start)
	r.metrics.IncrementCounter("reconciliation", map[string]string{"status": "success"})
	r.metrics.RecordProcessingTime("reconciliation", duration)
	r.events.LogReconciliationCompleted(ctx, accountID, models.FormatAmount(balance), len(transactions), duration.Milliseconds())

	return balance, nil
}

// accountLocks is a keyed mutex. Entries are reference counted and dropped
// when the last holder or waiter releases them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*accountLock)}
}

func (l *accountLocks) lock(accountID uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[accountID]
	if !ok {
		entry = &accountLock{}
		l.locks[accountID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, accountID)
		}
		l.mu.Unlock()
	}
}

func (l *accountLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
