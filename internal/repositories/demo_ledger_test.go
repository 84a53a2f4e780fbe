package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	demoChecking  = uuid.MustParse("5a2c1b7e-0c6e-4d7e-9a10-000000000101")
	demoSavings   = uuid.MustParse("5a2c1b7e-0c6e-4d7e-9a10-000000000102")
	demoCard      = uuid.MustParse("5a2c1b7e-0c6e-4d7e-9a10-000000000103")
	demoGroceries = uuid.MustParse("5a2c1b7e-0c6e-4d7e-9a10-000000000203")
)

func TestNewDemoLedger_FrozenClock(t *testing.T) {
	ledger, err := NewDemoLedger()
	require.NoError(t, err)

	now := ledger.Now()
	y, m, d := now.Date()
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.October, m)
	assert.Equal(t, 15, d)
	assert.Equal(t, now, ledger.Now())
}

func TestLoadDemoDataset_OwnerMatchesDemoUser(t *testing.T) {
	ds, err := loadDemoDataset()
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, ds.UserID)
	for _, account := range ds.Accounts {
		assert.Equal(t, DemoUserID, account.UserID)
	}
}

func TestDemoLedger_SearchMatchesAccountName(t *testing.T) {
	ledger, err := NewDemoLedger()
	require.NoError(t, err)

	transactions, err := ledger.Transactions.List(context.Background(), DemoUserID, models.TransactionFilters{Search: "rewards card"})
	require.NoError(t, err)
	require.NotEmpty(t, transactions)
	for _, txn := range transactions {
		assert.Equal(t, demoCard, txn.AccountID)
	}
}

func TestDemoLedger_BalancesMatchTransactions(t *testing.T) {
	ledger, err := NewDemoLedger()
	require.NoError(t, err)
	ctx := context.Background()

	accounts, err := ledger.Accounts.ListByUser(ctx, DemoUserID)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "13157.21", models.TotalBalance(accounts).StringFixed(2))

	for _, account := range accounts {
		transactions, err := ledger.Transactions.ListForAccount(ctx, DemoUserID, account.ID)
		require.NoError(t, err)
		assert.True(t, models.SignedBalance(account.ID, transactions).Equal(account.Balance),
			"stored balance of %s must equal its transactions", account.Name)
	}
}

func TestDemoLedger_Reads(t *testing.T) {
	ledger, err := NewDemoLedger()
	require.NoError(t, err)
	ctx := context.Background()

	account, err := ledger.Accounts.GetByID(ctx, DemoUserID, demoCard)
	require.NoError(t, err)
	assert.Equal(t, "Rewards Card", account.Name)

	_, err = ledger.Accounts.GetByID(ctx, uuid.New(), demoCard)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	savingsTxns, err := ledger.Transactions.ListForAccount(ctx, DemoUserID, demoSavings)
	require.NoError(t, err)
	assert.Len(t, savingsTxns, 3, "opening balance plus two incoming transfers")

	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	groceries, err := ledger.Transactions.List(ctx, DemoUserID, models.TransactionFilters{
		CategoryID: &demoGroceries,
		StartDate:  &start,
	})
	require.NoError(t, err)
	require.Len(t, groceries, 2)
	assert.True(t, groceries[0].Date.After(groceries[1].Date), "newest first")
	total := decimal.Zero
	for _, txn := range groceries {
		total = total.Add(txn.Amount)
	}
	assert.Equal(t, "325.50", total.StringFixed(2))

	limited, err := ledger.Transactions.List(ctx, DemoUserID, models.TransactionFilters{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, limited, 5)

	categories, err := ledger.Categories.ListByUser(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	budgets, err := ledger.Budgets.ListByUser(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Len(t, budgets, 5)

	goals, err := ledger.Goals.ListByUser(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, "9200.00", models.TotalSaved(goals).StringFixed(2))
}

func TestDemoLedger_WritesRejectedAndSnapshotUnchanged(t *testing.T) {
	ledger, err := NewDemoLedger()
	require.NoError(t, err)
	ctx := context.Background()
	before := DemoDatasetSnapshot()

	account, err := ledger.Accounts.GetByID(ctx, DemoUserID, demoChecking)
	require.NoError(t, err)
	account.Name = "Mutated"
	account.Balance = decimal.Zero

	assert.ErrorIs(t, ledger.Accounts.Create(ctx, &models.Account{}), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Accounts.Update(ctx, account), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Accounts.UpdateBalance(ctx, DemoUserID, demoChecking, decimal.Zero), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Accounts.Delete(ctx, DemoUserID, demoChecking), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Transactions.Create(ctx, &models.Transaction{}), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Transactions.Update(ctx, &models.Transaction{}), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Transactions.Delete(ctx, DemoUserID, uuid.New()), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Categories.Create(ctx, &models.Category{}), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Budgets.Delete(ctx, DemoUserID, uuid.New()), ErrReadOnlyStore)
	assert.ErrorIs(t, ledger.Goals.Update(ctx, &models.FinancialGoal{}), ErrReadOnlyStore)

	transactions, err := ledger.Transactions.ListForAccount(ctx, DemoUserID, demoSavings)
	require.NoError(t, err)
	for i := range transactions {
		transactions[i].Amount = decimal.Zero
		transactions[i].Tags = append(transactions[i].Tags, "mutated")
		if transactions[i].TransferAccountID != nil {
			*transactions[i].TransferAccountID = uuid.Nil
		}
	}
	again, err := ledger.Transactions.ListForAccount(ctx, DemoUserID, demoSavings)
	require.NoError(t, err)
	assert.True(t, models.SignedBalance(demoSavings, again).IsPositive())
	for _, txn := range again {
		assert.NotContains(t, txn.Tags, "mutated")
		if txn.TransferAccountID != nil {
			assert.NotEqual(t, uuid.Nil, *txn.TransferAccountID)
		}
	}

	reread, err := ledger.Accounts.GetByID(ctx, DemoUserID, demoChecking)
	require.NoError(t, err)
	assert.Equal(t, "Everyday Checking", reread.Name)
	assert.Equal(t, "7129.75", reread.Balance.StringFixed(2))
	assert.Equal(t, before, DemoDatasetSnapshot())
}
