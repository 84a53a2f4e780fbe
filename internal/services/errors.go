package services

import (
	"errors"
	"fmt"

	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated           = errors.New("not authenticated")
	ErrDemonstrationWriteRejected = errors.New("writes are disabled in demonstration mode")
	ErrReconciliationWriteFailed  = errors.New("reconciliation write failed, balance is stale")
	ErrDivisionByZeroTarget       = errors.New("progress target is zero")
	ErrCategoryTypeMismatch       = errors.New("category type does not match transaction type")
	ErrInvalidTransfer            = errors.New("invalid transfer")
	ErrInvalidMode                = errors.New("invalid mode")

	// ErrNotFound matches every per-entity not-found error of the store.
	ErrNotFound = repositories.ErrRecordNotFound
	// ErrConflict matches a write the store refused on an integrity constraint.
	ErrConflict = repositories.ErrConstraintViolation
)

// StaleBalanceError reports an account whose balance could not be written
// after its transactions changed. It matches ErrReconciliationWriteFailed and
// the underlying store error.
type StaleBalanceError struct {
	AccountID uuid.UUID
	Err       error
}

func (e *StaleBalanceError) Error() string {
	return fmt.Sprintf("%s: account %s: %v", ErrReconciliationWriteFailed, e.AccountID, e.Err)
}

func (e *StaleBalanceError) Unwrap() []error {
	return []error{ErrReconciliationWriteFailed, e.Err}
}

// StaleBalances collects every StaleBalanceError in err's tree, including
// each branch of a joined error, in order.
func StaleBalances(err error) []*StaleBalanceError {
	switch wrapped := err.(type) {
	case *StaleBalanceError:
		return []*StaleBalanceError{wrapped}
	case interface{ Unwrap() []error }:
		var all []*StaleBalanceError
		for _, inner := range wrapped.Unwrap() {
			all = append(all, StaleBalances(inner)...)
		}
		return all
	case interface{ Unwrap() error }:
		return StaleBalances(wrapped.Unwrap())
	default:
		return nil
	}
}
