package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const openingBalanceDescription = "Opening balance"

// LedgerDependencies are shared by every session's ledger service.
type LedgerDependencies struct {
	Persisted            repositories.Ledger
	Demo                 repositories.Ledger
	Identity             IdentityProviderInterface
	Reconciler           BalanceReconcilerInterface
	Events               LedgerEventLoggerInterface
	Metrics              MetricsRecorderInterface
	BudgetWarningPercent int
}

// ledgerService implements LedgerServiceInterface for one session
type ledgerService struct {
	deps     *LedgerDependencies
	selector *ModeSelector
}

// NewLedgerService creates the engine facade of one session
func NewLedgerService(deps *LedgerDependencies, selector *ModeSelector) LedgerServiceInterface {
	return &ledgerService{
		deps:     deps,
		selector: selector,
	}
}

// ledgerSource is the data source a single call works against.
type ledgerSource struct {
	ledger        repositories.Ledger
	mode          Mode
	generation    uint64
	userID        uuid.UUID
	authenticated bool
}

func (src ledgerSource) now() time.Time {
	if src.ledger.Now == nil {
		return time.Now()
	}
	return src.ledger.Now()
}

func (src ledgerSource) cacheKey(view string) string {
	return fmt.Sprintf("%s/%s/%s", src.mode, src.userID, view)
}

// readSource snapshots the mode once. Every read of the call then goes to the
// same ledger.
func (s *ledgerService) readSource(ctx context.Context) (ledgerSource, error) {
	mode, generation := s.selector.snapshot()

	if mode == ModeDemonstration {
		return ledgerSource{
			ledger:        s.deps.Demo,
			mode:          mode,
			generation:    generation,
			userID:        repositories.DemoUserID,
			authenticated: true,
		}, nil
	}

	userID, ok, err := s.deps.Identity.CurrentUser(ctx)
	if err != nil {
		return ledgerSource{}, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	return ledgerSource{
		ledger:        s.deps.Persisted,
		mode:          mode,
		generation:    generation,
		userID:        userID,
		authenticated: ok,
	}, nil
}

// entitySource is readSource for single-entity reads, which need a user.
func (s *ledgerService) entitySource(ctx context.Context) (ledgerSource, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return ledgerSource{}, err
	}
	if !src.authenticated {
		return ledgerSource{}, ErrNotAuthenticated
	}
	return src, nil
}

// writeSource rejects writes in demonstration mode before any store call.
func (s *ledgerService) writeSource(ctx context.Context, operation string) (ledgerSource, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return ledgerSource{}, err
	}

	if src.mode == ModeDemonstration {
		s.deps.Events.LogDemoWriteRejected(ctx, operation)
		s.deps.Metrics.IncrementCounter("demo_write_rejected", map[string]string{"operation": operation})
		return ledgerSource{}, ErrDemonstrationWriteRejected
	}

	if !src.authenticated {
		return ledgerSource{}, ErrNotAuthenticated
	}

	return src, nil
}

// reconcileAccounts reconciles each distinct account once. Every failure is
// reported; one stale account does not stop the others.
func (s *ledgerService) reconcileAccounts(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(accountIDs))
	var errs []error

	for _, accountID := range accountIDs {
		if _, ok := seen[accountID]; ok {
			continue
		}
		seen[accountID] = struct{}{}

		if _, err := s.deps.Reconciler.Reconcile(ctx, userID, accountID); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Mode returns the session's current mode
func (s *ledgerService) Mode() Mode {
	return s.selector.Mode()
}

// SwitchMode transitions the session, reporting whether anything changed
func (s *ledgerService) SwitchMode(ctx context.Context, to Mode) bool {
	from := s.selector.Mode()
	if !s.selector.Transition(to) {
		return false
	}

	s.deps.Events.LogModeTransition(ctx, string(from), string(to))
	s.deps.Metrics.IncrementCounter("mode_transition", map[string]string{"to": string(to)})
	return true
}

// ListAccounts lists the acting user's accounts
func (s *ledgerService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.Account{}, nil
	}

	accounts, err := src.ledger.Accounts.ListByUser(ctx, src.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount retrieves one account
func (s *ledgerService) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	src, err := s.entitySource(ctx)
	if err != nil {
		return nil, err
	}

	account, err := src.ledger.Accounts.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// CreateAccount stores the account with an opening transaction for a non-zero
// opening balance, then reconciles it.
func (s *ledgerService) CreateAccount(ctx context.Context, account *models.Account, openingBalance decimal.Decimal) (*models.Account, error) {
	src, err := s.writeSource(ctx, "create_account")
	if err != nil {
		return nil, err
	}

	account.UserID = src.userID
	account.Balance = decimal.Zero

	var opening []models.Transaction
	if !openingBalance.IsZero() {
		transactionType := models.TransactionTypeIncome
		if openingBalance.IsNegative() {
			transactionType = models.TransactionTypeExpense
		}
		opening = append(opening, models.Transaction{
			TransactionType: transactionType,
			Amount:          models.RoundAmount(openingBalance.Abs()),
			Date:            models.CivilDate(src.now()),
			Description:     openingBalanceDescription,
		})
	}

	if err := src.ledger.Accounts.Create(ctx, account, opening...); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	balance, err := s.deps.Reconciler.Reconcile(ctx, src.userID, account.ID)
	if err != nil {
		return account, err
	}
	account.Balance = balance

	return account, nil
}

// UpdateAccount writes the descriptive fields. The balance is never taken
// from the caller.
func (s *ledgerService) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	src, err := s.writeSource(ctx, "update_account")
	if err != nil {
		return nil, err
	}

	account.UserID = src.userID
	if err := src.ledger.Accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	updated, err := src.ledger.Accounts.GetByID(ctx, src.userID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return updated, nil
}

// DeleteAccount removes the account and every transaction touching it, then
// reconciles the other side of any removed transfer.
func (s *ledgerService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	src, err := s.writeSource(ctx, "delete_account")
	if err != nil {
		return err
	}

	transactions, err := src.ledger.Transactions.ListForAccount(ctx, src.userID, id)
	if err != nil {
		return fmt.Errorf("failed to list account transactions: %w", err)
	}

	var counterparts []uuid.UUID
	for i := range transactions {
		for _, accountID := range transactions[i].AffectedAccounts() {
			if accountID != id {
				counterparts = append(counterparts, accountID)
			}
		}
	}

	if err := src.ledger.Accounts.Delete(ctx, src.userID, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return s.reconcileAccounts(ctx, src.userID, counterparts...)
}

// ReconcileAccount recomputes one account's balance on demand
func (s *ledgerService) ReconcileAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	src, err := s.writeSource(ctx, "reconcile_account")
	if err != nil {
		return nil, err
	}

	if _, err := s.deps.Reconciler.Reconcile(ctx, src.userID, id); err != nil {
		return nil, err
	}

	account, err := src.ledger.Accounts.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListTransactions lists the acting user's transactions, newest first
func (s *ledgerService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.Transaction{}, nil
	}

	transactions, err := src.ledger.Transactions.List(ctx, src.userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// GetTransaction retrieves one transaction
func (s *ledgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	src, err := s.entitySource(ctx)
	if err != nil {
		return nil, err
	}

	transaction, err := src.ledger.Transactions.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// CreateTransaction posts a transaction and reconciles every account it
// touches. A reconciliation failure is returned together with the stored
// transaction.
func (s *ledgerService) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	src, err := s.writeSource(ctx, "create_transaction")
	if err != nil {
		return nil, err
	}

	transaction.UserID = src.userID
	if err := s.checkTransaction(ctx, src, transaction); err != nil {
		return nil, err
	}

	if err := src.ledger.Transactions.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, s.reconcileAccounts(ctx, src.userID, transaction.AffectedAccounts()...)
}

// UpdateTransaction rewrites a transaction and reconciles the accounts it
// touched before and after the edit.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	src, err := s.writeSource(ctx, "update_transaction")
	if err != nil {
		return nil, err
	}

	existing, err := src.ledger.Transactions.GetByID(ctx, src.userID, transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	transaction.UserID = src.userID
	transaction.CreatedAt = existing.CreatedAt
	if err := s.checkTransaction(ctx, src, transaction); err != nil {
		return nil, err
	}

	if err := src.ledger.Transactions.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	affected := append(existing.AffectedAccounts(), transaction.AffectedAccounts()...)
	return transaction, s.reconcileAccounts(ctx, src.userID, affected...)
}

// DeleteTransaction removes a transaction and reconciles the accounts it touched
func (s *ledgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	src, err := s.writeSource(ctx, "delete_transaction")
	if err != nil {
		return err
	}

	existing, err := src.ledger.Transactions.GetByID(ctx, src.userID, id)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := src.ledger.Transactions.Delete(ctx, src.userID, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return s.reconcileAccounts(ctx, src.userID, existing.AffectedAccounts()...)
}

// checkTransaction verifies the references of a transaction against the
// acting user's ledger.
func (s *ledgerService) checkTransaction(ctx context.Context, src ledgerSource, transaction *models.Transaction) error {
	if transaction.TransferAccountID != nil {
		if !transaction.IsTransfer() {
			return fmt.Errorf("%w: %w", ErrInvalidTransfer, models.ErrTransferDestinationType)
		}
		if *transaction.TransferAccountID == transaction.AccountID {
			return fmt.Errorf("%w: %w", ErrInvalidTransfer, models.ErrTransferToSameAccount)
		}
	}

	if _, err := src.ledger.Accounts.GetByID(ctx, src.userID, transaction.AccountID); err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	if transaction.TransferAccountID != nil {
		if _, err := src.ledger.Accounts.GetByID(ctx, src.userID, *transaction.TransferAccountID); err != nil {
			return fmt.Errorf("failed to get destination account: %w", err)
		}
	}

	if transaction.CategoryID != nil {
		category, err := src.ledger.Categories.GetByID(ctx, src.userID, *transaction.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to get category: %w", err)
		}
		if !category.Accepts(transaction.TransactionType) {
			return fmt.Errorf("%w: %s category %q on %s transaction",
				ErrCategoryTypeMismatch, category.CategoryType, category.Name, transaction.TransactionType)
		}
	}

	return nil
}
