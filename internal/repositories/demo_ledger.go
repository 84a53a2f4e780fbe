package repositories

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:embed demo_dataset.json
var demoDatasetJSON []byte

var (
	// DemoUserID owns every record of the demonstration dataset.
	DemoUserID = uuid.MustParse("5a2c1b7e-0c6e-4d7e-9a10-000000000001")

	ErrReadOnlyStore     = errors.New("demonstration store is read-only")
	ErrDemoOwnerMismatch = errors.New("demonstration dataset owner does not match DemoUserID")
)

type demoDataset struct {
	Version      string                 `json:"version"`
	AsOf         string                 `json:"as_of"`
	UserID       uuid.UUID              `json:"user_id"`
	Accounts     []models.Account       `json:"accounts"`
	Categories   []models.Category      `json:"categories"`
	Transactions []models.Transaction   `json:"transactions"`
	Budgets      []models.Budget        `json:"budgets"`
	Goals        []models.FinancialGoal `json:"goals"`
}

// DemoDatasetSnapshot returns a copy of the embedded dataset bytes.
func DemoDatasetSnapshot() []byte {
	return bytes.Clone(demoDatasetJSON)
}

func loadDemoDataset() (*demoDataset, error) {
	var ds demoDataset
	if err := json.Unmarshal(demoDatasetJSON, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode demonstration dataset: %w", err)
	}
	if ds.UserID != DemoUserID {
		return nil, fmt.Errorf("%w: dataset has %s", ErrDemoOwnerMismatch, ds.UserID)
	}
	return &ds, nil
}

// The dataset is decoded once per ledger and never handed out directly: every
// read returns deep copies, so callers cannot mutate what later reads see.

func cloneTransaction(t models.Transaction) models.Transaction {
	if t.CategoryID != nil {
		id := *t.CategoryID
		t.CategoryID = &id
	}
	if t.TransferAccountID != nil {
		id := *t.TransferAccountID
		t.TransferAccountID = &id
	}
	t.Tags = slices.Clone(t.Tags)
	return t
}

func cloneBudget(b models.Budget) models.Budget {
	if b.EndDate != nil {
		end := *b.EndDate
		b.EndDate = &end
	}
	return b
}

func cloneGoal(g models.FinancialGoal) models.FinancialGoal {
	if g.TargetDate != nil {
		due := *g.TargetDate
		g.TargetDate = &due
	}
	return g
}

// NewDemoLedger returns a read-only ledger over the embedded dataset. Its
// clock is frozen at the dataset's as-of date so period views stay populated.
func NewDemoLedger() (Ledger, error) {
	ds, err := loadDemoDataset()
	if err != nil {
		return Ledger{}, err
	}

	asOf, err := time.ParseInLocation("2006-01-02", ds.AsOf, time.Local)
	if err != nil {
		return Ledger{}, fmt.Errorf("failed to parse demonstration dataset as_of: %w", err)
	}
	asOf = asOf.Add(12 * time.Hour)

	slog.Info("Demonstration dataset loaded",
		"version", ds.Version,
		"as_of", ds.AsOf,
		"accounts", len(ds.Accounts),
		"transactions", len(ds.Transactions),
	)

	return Ledger{
		Accounts:     demoAccounts{ds: ds},
		Transactions: demoTransactions{ds: ds},
		Categories:   demoCategories{ds: ds},
		Budgets:      demoBudgets{ds: ds},
		Goals:        demoGoals{ds: ds},
		Now:          func() time.Time { return asOf },
	}, nil
}

type demoAccounts struct {
	ds *demoDataset
}

func (demoAccounts) Create(context.Context, *models.Account, ...models.Transaction) error {
	return ErrReadOnlyStore
}

func (r demoAccounts) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Account, error) {
	for _, account := range r.ds.Accounts {
		if account.ID == id && account.UserID == userID {
			return &account, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r demoAccounts) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(r.ds.Accounts))
	for _, account := range r.ds.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (demoAccounts) Update(context.Context, *models.Account) error {
	return ErrReadOnlyStore
}

func (demoAccounts) UpdateBalance(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal) error {
	return ErrReadOnlyStore
}

func (demoAccounts) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return ErrReadOnlyStore
}

type demoTransactions struct {
	ds *demoDataset
}

func (demoTransactions) Create(context.Context, *models.Transaction) error {
	return ErrReadOnlyStore
}

func (r demoTransactions) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	for i := range r.ds.Transactions {
		if r.ds.Transactions[i].ID == id && r.ds.Transactions[i].UserID == userID {
			transaction := cloneTransaction(r.ds.Transactions[i])
			return &transaction, nil
		}
	}
	return nil, ErrTransactionNotFound
}

func (r demoTransactions) List(_ context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	accountNames := make(map[uuid.UUID]string, len(r.ds.Accounts))
	for _, account := range r.ds.Accounts {
		accountNames[account.ID] = account.Name
	}

	transactions := make([]models.Transaction, 0, len(r.ds.Transactions))
	for i := range r.ds.Transactions {
		t := &r.ds.Transactions[i]
		if t.UserID == userID && filters.Matches(t, accountNames[t.AccountID]) {
			transactions = append(transactions, cloneTransaction(*t))
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	if filters.Limit > 0 && len(transactions) > filters.Limit {
		transactions = transactions[:filters.Limit]
	}
	return transactions, nil
}

func (r demoTransactions) ListForAccount(_ context.Context, userID, accountID uuid.UUID) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	for i := range r.ds.Transactions {
		if r.ds.Transactions[i].UserID == userID && r.ds.Transactions[i].Touches(accountID) {
			transactions = append(transactions, cloneTransaction(r.ds.Transactions[i]))
		}
	}
	return transactions, nil
}

func (demoTransactions) Update(context.Context, *models.Transaction) error {
	return ErrReadOnlyStore
}

func (demoTransactions) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return ErrReadOnlyStore
}

type demoCategories struct {
	ds *demoDataset
}

func (demoCategories) Create(context.Context, *models.Category) error {
	return ErrReadOnlyStore
}

func (r demoCategories) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Category, error) {
	for _, category := range r.ds.Categories {
		if category.ID == id && category.UserID == userID {
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r demoCategories) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(r.ds.Categories))
	for _, category := range r.ds.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (demoCategories) Update(context.Context, *models.Category) error {
	return ErrReadOnlyStore
}

func (demoCategories) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return ErrReadOnlyStore
}

type demoBudgets struct {
	ds *demoDataset
}

func (demoBudgets) Create(context.Context, *models.Budget) error {
	return ErrReadOnlyStore
}

func (r demoBudgets) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Budget, error) {
	for i := range r.ds.Budgets {
		if r.ds.Budgets[i].ID == id && r.ds.Budgets[i].UserID == userID {
			budget := cloneBudget(r.ds.Budgets[i])
			return &budget, nil
		}
	}
	return nil, ErrBudgetNotFound
}

func (r demoBudgets) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0, len(r.ds.Budgets))
	for _, budget := range r.ds.Budgets {
		if budget.UserID == userID {
			budgets = append(budgets, cloneBudget(budget))
		}
	}
	return budgets, nil
}

func (demoBudgets) Update(context.Context, *models.Budget) error {
	return ErrReadOnlyStore
}

func (demoBudgets) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return ErrReadOnlyStore
}

type demoGoals struct {
	ds *demoDataset
}

func (demoGoals) Create(context.Context, *models.FinancialGoal) error {
	return ErrReadOnlyStore
}

func (r demoGoals) GetByID(_ context.Context, userID, id uuid.UUID) (*models.FinancialGoal, error) {
	for i := range r.ds.Goals {
		if r.ds.Goals[i].ID == id && r.ds.Goals[i].UserID == userID {
			goal := cloneGoal(r.ds.Goals[i])
			return &goal, nil
		}
	}
	return nil, ErrGoalNotFound
}

func (r demoGoals) ListByUser(_ context.Context, userID uuid.UUID) ([]models.FinancialGoal, error) {
	goals := make([]models.FinancialGoal, 0, len(r.ds.Goals))
	for _, goal := range r.ds.Goals {
		if goal.UserID == userID {
			goals = append(goals, cloneGoal(goal))
		}
	}
	return goals, nil
}

func (demoGoals) Update(context.Context, *models.FinancialGoal) error {
	return ErrReadOnlyStore
}

func (demoGoals) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return ErrReadOnlyStore
}
