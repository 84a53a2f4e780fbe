package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound is wrapped by every per-entity not-found error.
	ErrRecordNotFound = errors.New("record not found")

	ErrAccountNotFound     = fmt.Errorf("account: %w", ErrRecordNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction: %w", ErrRecordNotFound)
	ErrCategoryNotFound    = fmt.Errorf("category: %w", ErrRecordNotFound)
	ErrBudgetNotFound      = fmt.Errorf("budget: %w", ErrRecordNotFound)
	ErrGoalNotFound        = fmt.Errorf("goal: %w", ErrRecordNotFound)
)

// Ledger bundles the per-entity stores of one data source.
type Ledger struct {
	Accounts     AccountRepositoryInterface
	Transactions TransactionRepositoryInterface
	Categories   CategoryRepositoryInterface
	Budgets      BudgetRepositoryInterface
	Goals        GoalRepositoryInterface

	// Now is the source's notion of the current time. Frozen for static datasets.
	Now func() time.Time
}

// NewLedger wires the gorm-backed stores over one database handle.
func NewLedger(db *gorm.DB, guard *StoreGuard) Ledger {
	return Ledger{
		Accounts:     NewAccountRepository(db, guard),
		Transactions: NewTransactionRepository(db, guard),
		Categories:   NewCategoryRepository(db, guard),
		Budgets:      NewBudgetRepository(db, guard),
		Goals:        NewGoalRepository(db, guard),
		Now:          time.Now,
	}
}
