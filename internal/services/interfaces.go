package services

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IdentityProviderInterface resolves the acting user of a request
type IdentityProviderInterface interface {
	// CurrentUser returns false when the request is anonymous.
	CurrentUser(ctx context.Context) (uuid.UUID, bool, error)
}

// BalanceReconcilerInterface recomputes stored account balances from transactions
type BalanceReconcilerInterface interface {
	Reconcile(ctx context.Context, userID, accountID uuid.UUID) (decimal.Decimal, error)
}

// LedgerServiceInterface is the engine facade consumed by the HTTP handlers.
// One instance serves one session and reads its mode once per call.
type LedgerServiceInterface interface {
	Mode() Mode
	SwitchMode(ctx context.Context, to Mode) bool

	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account, openingBalance decimal.Decimal) (*models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ReconcileAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)

	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	UpdateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error

	ListGoals(ctx context.Context) ([]models.FinancialGoal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*models.FinancialGoal, error)
	CreateGoal(ctx context.Context, goal *models.FinancialGoal) (*models.FinancialGoal, error)
	UpdateGoal(ctx context.Context, goal *models.FinancialGoal) (*models.FinancialGoal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error

	GetDashboard(ctx context.Context) (*models.DashboardSummary, error)
	// GetBudgetProgress evaluates every budget in the period containing asOf,
	// or the source's current date when asOf is nil.
	GetBudgetProgress(ctx context.Context, asOf *time.Time) ([]models.BudgetStatus, error)
	GetGoalProgress(ctx context.Context) ([]models.GoalStatus, error)
	GetCategoryBreakdown(ctx context.Context, window models.Window) ([]models.CategoryTotal, error)
}

// TokenServiceInterface validates access tokens minted by the identity provider
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerEventLoggerInterface records structured ledger events
type LedgerEventLoggerInterface interface {
	LogReconciliationStarted(ctx context.Context, accountID uuid.UUID)
	LogReconciliationCompleted(ctx context.Context, accountID uuid.UUID, balance string, transactionCount int, durationMs int64)
	LogReconciliationFailed(ctx context.Context, accountID uuid.UUID, stage string, errorMsg string)
	LogStaleBalance(ctx context.Context, accountID uuid.UUID, computedBalance string, errorMsg string)
	LogDemoWriteRejected(ctx context.Context, operation string)
	LogModeTransition(ctx context.Context, from, to string)
	LogProgressUnavailable(ctx context.Context, entityType string, entityID uuid.UUID, errorMsg string)
}
