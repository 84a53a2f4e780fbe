package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerRepositorySuite exercises the gorm-backed stores against sqlite
type LedgerRepositorySuite struct {
	suite.Suite
	db     *database.DB
	ledger Ledger
	ctx    context.Context
	userID uuid.UUID
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ledger = NewLedger(s.db.DB, NewStoreGuard(DefaultStoreGuardConfig()))
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *LedgerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestLedgerRepositorySuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *LedgerRepositorySuite) createAccount(userID uuid.UUID, name string) *models.Account {
	account := &models.Account{
		UserID:      userID,
		Name:        name,
		AccountType: models.AccountTypeChecking,
		BankName:    gofakeit.Company(),
		IsActive:    true,
	}
	s.Require().NoError(s.ledger.Accounts.Create(s.ctx, account))
	return account
}

func (s *LedgerRepositorySuite) createTransaction(txn *models.Transaction) *models.Transaction {
	if txn.UserID == uuid.Nil {
		txn.UserID = s.userID
	}
	s.Require().NoError(s.ledger.Transactions.Create(s.ctx, txn))
	return txn
}

func (s *LedgerRepositorySuite) TestAccountCreate_WithOpeningTransaction() {
	account := &models.Account{
		UserID:      s.userID,
		Name:        "High-Yield Savings",
		AccountType: models.AccountTypeSavings,
		Balance:     decimal.RequireFromString("5000"),
		IsActive:    true,
	}
	opening := models.Transaction{
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("5000"),
		Date:            day(2026, time.September, 1),
		Description:     "Opening balance",
	}

	err := s.ledger.Accounts.Create(s.ctx, account, opening)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(models.DefaultCurrency, account.Currency)

	transactions, err := s.ledger.Transactions.ListForAccount(s.ctx, s.userID, account.ID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(account.ID, transactions[0].AccountID)
	s.Equal(s.userID, transactions[0].UserID)
	s.True(transactions[0].Amount.Equal(decimal.RequireFromString("5000")))
}

func (s *LedgerRepositorySuite) TestAccountCreate_InvalidOpeningTransactionStoresNothing() {
	account := &models.Account{
		UserID:      s.userID,
		Name:        "Broken",
		AccountType: models.AccountTypeCash,
	}
	opening := models.Transaction{
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("-1"),
		Date:            day(2026, time.September, 1),
	}

	err := s.ledger.Accounts.Create(s.ctx, account, opening)
	s.ErrorIs(err, models.ErrInvalidAmount)

	accounts, err := s.ledger.Accounts.ListByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *LedgerRepositorySuite) TestAccountGetByID_ScopedToUser() {
	account := s.createAccount(s.userID, "Everyday Checking")

	found, err := s.ledger.Accounts.GetByID(s.ctx, s.userID, account.ID)
	s.Require().NoError(err)
	s.Equal("Everyday Checking", found.Name)

	_, err = s.ledger.Accounts.GetByID(s.ctx, uuid.New(), account.ID)
	s.ErrorIs(err, ErrAccountNotFound)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *LedgerRepositorySuite) TestAccountListByUser_OnlyOwnAccounts() {
	s.createAccount(s.userID, "Checking")
	s.createAccount(s.userID, "Savings")
	s.createAccount(uuid.New(), "Someone else")

	accounts, err := s.ledger.Accounts.ListByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(accounts, 2)
	for _, account := range accounts {
		s.Equal(s.userID, account.UserID)
	}
}

func (s *LedgerRepositorySuite) TestAccountUpdate_LeavesBalanceUntouched() {
	account := s.createAccount(s.userID, "Checking")
	s.Require().NoError(s.ledger.Accounts.UpdateBalance(s.ctx, s.userID, account.ID, decimal.RequireFromString("100")))

	account.Name = "Joint Checking"
	account.IsActive = false
	account.Balance = decimal.RequireFromString("999999")
	s.Require().NoError(s.ledger.Accounts.Update(s.ctx, account))

	found, err := s.ledger.Accounts.GetByID(s.ctx, s.userID, account.ID)
	s.Require().NoError(err)
	s.Equal("Joint Checking", found.Name)
	s.False(found.IsActive)
	s.True(found.Balance.Equal(decimal.RequireFromString("100")))
}

func (s *LedgerRepositorySuite) TestAccountUpdate_OtherUser() {
	account := s.createAccount(s.userID, "Checking")
	account.UserID = uuid.New()

	err := s.ledger.Accounts.Update(s.ctx, account)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *LedgerRepositorySuite) TestUpdateBalance() {
	account := s.createAccount(s.userID, "Checking")

	err := s.ledger.Accounts.UpdateBalance(s.ctx, s.userID, account.ID, decimal.RequireFromString("649.51"))
	s.Require().NoError(err)

	found, err := s.ledger.Accounts.GetByID(s.ctx, s.userID, account.ID)
	s.Require().NoError(err)
	s.Equal("649.51", found.Balance.StringFixed(2))

	err = s.ledger.Accounts.UpdateBalance(s.ctx, s.userID, uuid.New(), decimal.Zero)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *LedgerRepositorySuite) TestListForAccount_IncludesTransferDestination() {
	checking := s.createAccount(s.userID, "Checking")
	savings := s.createAccount(s.userID, "Savings")

	s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("1000"),
		Date:            day(2026, time.October, 1),
	})
	s.createTransaction(&models.Transaction{
		AccountID:         checking.ID,
		TransferAccountID: &savings.ID,
		TransactionType:   models.TransactionTypeTransfer,
		Amount:            decimal.RequireFromString("300"),
		Date:              day(2026, time.October, 2),
	})

	savingsTxns, err := s.ledger.Transactions.ListForAccount(s.ctx, s.userID, savings.ID)
	s.Require().NoError(err)
	s.Require().Len(savingsTxns, 1)
	s.Equal("300.00", models.SignedBalance(savings.ID, savingsTxns).StringFixed(2))

	checkingTxns, err := s.ledger.Transactions.ListForAccount(s.ctx, s.userID, checking.ID)
	s.Require().NoError(err)
	s.Len(checkingTxns, 2)
	s.Equal("700.00", models.SignedBalance(checking.ID, checkingTxns).StringFixed(2))
}

func (s *LedgerRepositorySuite) TestTransactionList_Filters() {
	checking := s.createAccount(s.userID, "Checking")
	groceries := &models.Category{UserID: s.userID, Name: "Groceries", CategoryType: models.CategoryTypeExpense}
	s.Require().NoError(s.ledger.Categories.Create(s.ctx, groceries))

	s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		CategoryID:      &groceries.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("180.25"),
		Date:            day(2026, time.October, 2),
		Description:     "Supermarket run",
		Merchant:        "FreshMart",
		Tags:            models.StringSet{"weekly"},
	})
	s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("4200"),
		Date:            day(2026, time.October, 1),
		Description:     "Monthly salary",
	})
	s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("145"),
		Date:            day(2026, time.September, 3),
		Description:     "Electricity bill",
	})
	s.createTransaction(&models.Transaction{
		UserID:          uuid.New(),
		AccountID:       uuid.New(),
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("1"),
		Date:            day(2026, time.October, 2),
		Description:     "Not mine",
	})

	all, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Supermarket run", all[0].Description, "newest first")
	s.Equal(models.StringSet{"weekly"}, all[0].Tags)

	start := day(2026, time.October, 1)
	end := day(2026, time.October, 2)
	october, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Require().Len(october, 1)
	s.Equal("Monthly salary", october[0].Description)

	searched, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{Search: "freshmart"})
	s.Require().NoError(err)
	s.Len(searched, 1)

	byCategory, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{CategoryID: &groceries.ID})
	s.Require().NoError(err)
	s.Len(byCategory, 1)

	expenses, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{Type: models.TransactionTypeExpense, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal("Supermarket run", expenses[0].Description)
}

func (s *LedgerRepositorySuite) TestTransactionList_SearchLocationAndAccountName() {
	checking := s.createAccount(s.userID, "Everyday Checking")
	card := s.createAccount(s.userID, "Rewards Card")
	strangerCard := s.createAccount(uuid.New(), "Rewards Card")

	s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("42.10"),
		Date:            day(2026, time.October, 3),
		Description:     "Dinner",
		Location:        "Portland, OR",
	})
	s.createTransaction(&models.Transaction{
		AccountID:       card.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("9.99"),
		Date:            day(2026, time.October, 4),
		Description:     "Streaming",
	})
	s.createTransaction(&models.Transaction{
		UserID:          strangerCard.UserID,
		AccountID:       strangerCard.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("5"),
		Date:            day(2026, time.October, 4),
		Description:     "Not mine",
	})

	byLocation, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{Search: "portland"})
	s.Require().NoError(err)
	s.Require().Len(byLocation, 1)
	s.Equal("Dinner", byLocation[0].Description)

	byAccount, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{Search: "rewards"})
	s.Require().NoError(err)
	s.Require().Len(byAccount, 1)
	s.Equal("Streaming", byAccount[0].Description)
}

func (s *LedgerRepositorySuite) TestTransactionUpdate_ReassignAccount() {
	checking := s.createAccount(s.userID, "Checking")
	card := s.createAccount(s.userID, "Card")

	txn := s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("68.90"),
		Date:            day(2026, time.September, 20),
		Description:     "Dinner out",
	})

	txn.AccountID = card.ID
	txn.Amount = decimal.RequireFromString("70")
	txn.Notes = ""
	s.Require().NoError(s.ledger.Transactions.Update(s.ctx, txn))

	found, err := s.ledger.Transactions.GetByID(s.ctx, s.userID, txn.ID)
	s.Require().NoError(err)
	s.Equal(card.ID, found.AccountID)
	s.Equal("70.00", found.Amount.StringFixed(2))

	checkingTxns, err := s.ledger.Transactions.ListForAccount(s.ctx, s.userID, checking.ID)
	s.Require().NoError(err)
	s.Empty(checkingTxns)
}

func (s *LedgerRepositorySuite) TestTransactionUpdateAndDelete_NotFound() {
	txn := &models.Transaction{
		ID:              uuid.New(),
		UserID:          s.userID,
		AccountID:       uuid.New(),
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("1"),
		Date:            day(2026, time.October, 1),
	}

	s.ErrorIs(s.ledger.Transactions.Update(s.ctx, txn), ErrTransactionNotFound)
	s.ErrorIs(s.ledger.Transactions.Delete(s.ctx, s.userID, txn.ID), ErrTransactionNotFound)
}

func (s *LedgerRepositorySuite) TestAccountDelete_CascadesBothSides() {
	checking := s.createAccount(s.userID, "Checking")
	savings := s.createAccount(s.userID, "Savings")

	s.createTransaction(&models.Transaction{
		AccountID:       savings.ID,
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("5000"),
		Date:            day(2026, time.September, 1),
	})
	s.createTransaction(&models.Transaction{
		AccountID:         checking.ID,
		TransferAccountID: &savings.ID,
		TransactionType:   models.TransactionTypeTransfer,
		Amount:            decimal.RequireFromString("1000"),
		Date:              day(2026, time.September, 5),
	})
	survivor := s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		TransactionType: models.TransactionTypeIncome,
		Amount:          decimal.RequireFromString("4200"),
		Date:            day(2026, time.September, 1),
	})

	s.Require().NoError(s.ledger.Accounts.Delete(s.ctx, s.userID, savings.ID))

	_, err := s.ledger.Accounts.GetByID(s.ctx, s.userID, savings.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	remaining, err := s.ledger.Transactions.List(s.ctx, s.userID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal(survivor.ID, remaining[0].ID)

	s.ErrorIs(s.ledger.Accounts.Delete(s.ctx, s.userID, savings.ID), ErrAccountNotFound)
}

func (s *LedgerRepositorySuite) TestCategoryDelete_DetachesTransactionsAndDropsBudgets() {
	checking := s.createAccount(s.userID, "Checking")
	dining := &models.Category{UserID: s.userID, Name: "Dining", CategoryType: models.CategoryTypeExpense}
	s.Require().NoError(s.ledger.Categories.Create(s.ctx, dining))
	s.Equal(models.DefaultCategoryColor, dining.Color)

	txn := s.createTransaction(&models.Transaction{
		AccountID:       checking.ID,
		CategoryID:      &dining.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("68.90"),
		Date:            day(2026, time.September, 20),
	})
	budget := &models.Budget{
		UserID:     s.userID,
		CategoryID: dining.ID,
		Amount:     decimal.RequireFromString("200"),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  day(2026, time.January, 1),
		IsActive:   true,
	}
	s.Require().NoError(s.ledger.Budgets.Create(s.ctx, budget))

	s.Require().NoError(s.ledger.Categories.Delete(s.ctx, s.userID, dining.ID))

	found, err := s.ledger.Transactions.GetByID(s.ctx, s.userID, txn.ID)
	s.Require().NoError(err)
	s.Nil(found.CategoryID)

	_, err = s.ledger.Budgets.GetByID(s.ctx, s.userID, budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)

	s.ErrorIs(s.ledger.Categories.Delete(s.ctx, s.userID, dining.ID), ErrCategoryNotFound)
}

func (s *LedgerRepositorySuite) TestBudgetUpdate() {
	groceries := &models.Category{UserID: s.userID, Name: "Groceries", CategoryType: models.CategoryTypeExpense}
	s.Require().NoError(s.ledger.Categories.Create(s.ctx, groceries))

	budget := &models.Budget{
		UserID:     s.userID,
		CategoryID: groceries.ID,
		Amount:     decimal.RequireFromString("500"),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  day(2026, time.January, 1),
		IsActive:   true,
	}
	s.Require().NoError(s.ledger.Budgets.Create(s.ctx, budget))

	end := day(2026, time.December, 31)
	budget.Amount = decimal.RequireFromString("450")
	budget.Period = models.BudgetPeriodYearly
	budget.EndDate = &end
	s.Require().NoError(s.ledger.Budgets.Update(s.ctx, budget))

	found, err := s.ledger.Budgets.GetByID(s.ctx, s.userID, budget.ID)
	s.Require().NoError(err)
	s.Equal("450.00", found.Amount.StringFixed(2))
	s.Equal(models.BudgetPeriodYearly, found.Period)
	s.Require().NotNil(found.EndDate)
	s.True(found.EndDate.Equal(end))

	budgets, err := s.ledger.Budgets.ListByUser(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.Empty(budgets)
}

func (s *LedgerRepositorySuite) TestGoals() {
	late := day(2027, time.June, 30)
	soon := day(2027, time.March, 1)

	emergency := &models.FinancialGoal{
		UserID:        s.userID,
		Name:          "Emergency Fund",
		TargetAmount:  decimal.RequireFromString("10000"),
		CurrentAmount: decimal.RequireFromString("6500"),
		TargetDate:    &late,
	}
	vacation := &models.FinancialGoal{
		UserID:        s.userID,
		Name:          "Summer Vacation",
		TargetAmount:  decimal.RequireFromString("3000"),
		CurrentAmount: decimal.RequireFromString("1200"),
		TargetDate:    &soon,
	}
	s.Require().NoError(s.ledger.Goals.Create(s.ctx, emergency))
	s.Require().NoError(s.ledger.Goals.Create(s.ctx, vacation))

	goals, err := s.ledger.Goals.ListByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(goals, 2)
	s.Equal("Summer Vacation", goals[0].Name, "earliest target date first")

	vacation.CurrentAmount = decimal.RequireFromString("3000")
	vacation.IsCompleted = true
	s.Require().NoError(s.ledger.Goals.Update(s.ctx, vacation))

	goals, err = s.ledger.Goals.ListByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("Emergency Fund", goals[0].Name, "completed goals sort last")
	s.True(models.TotalSaved(goals).Equal(decimal.RequireFromString("9500")))

	s.Require().NoError(s.ledger.Goals.Delete(s.ctx, s.userID, emergency.ID))
	_, err = s.ledger.Goals.GetByID(s.ctx, s.userID, emergency.ID)
	s.ErrorIs(err, ErrGoalNotFound)
}
