package repositories

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Every method is scoped to the owning user. No method reads or writes
// another user's records.

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	// Create stores the account together with any opening transactions, atomically.
	Create(ctx context.Context, account *models.Account, openingTransactions ...models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	// Update writes descriptive fields only; balance is left untouched.
	Update(ctx context.Context, account *models.Account) error
	// UpdateBalance overwrites the cached balance under a row lock.
	UpdateBalance(ctx context.Context, userID, id uuid.UUID, balance decimal.Decimal) error
	// Delete removes the account and every transaction touching it.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	// ListForAccount returns every transaction debiting or crediting the account,
	// including transfers where it is the destination.
	ListForAccount(ctx context.Context, userID, accountID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// Delete detaches the category from its transactions and drops its budgets.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// GoalRepositoryInterface defines the contract for financial goal repository operations
type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *models.FinancialGoal) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.FinancialGoal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.FinancialGoal, error)
	Update(ctx context.Context, goal *models.FinancialGoal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
