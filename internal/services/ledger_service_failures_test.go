package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceFailureTestSuite drives the engine's error paths with mocks
type LedgerServiceFailureTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	service      services.LedgerServiceInterface
	accounts     *repository_mocks.MockAccountRepositoryInterface
	transactions *repository_mocks.MockTransactionRepositoryInterface
	categories   *repository_mocks.MockCategoryRepositoryInterface
	budgets      *repository_mocks.MockBudgetRepositoryInterface
	goals        *repository_mocks.MockGoalRepositoryInterface
	identity     *service_mocks.MockIdentityProviderInterface
	reconciler   *service_mocks.MockBalanceReconcilerInterface
	events       *service_mocks.MockLedgerEventLoggerInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	userID       uuid.UUID
}

func TestLedgerServiceFailureSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceFailureTestSuite))
}

func (s *LedgerServiceFailureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.accounts = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactions = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categories = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.budgets = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.goals = repository_mocks.NewMockGoalRepositoryInterface(s.ctrl)
	s.identity = service_mocks.NewMockIdentityProviderInterface(s.ctrl)
	s.reconciler = service_mocks.NewMockBalanceReconcilerInterface(s.ctrl)
	s.events = service_mocks.NewMockLedgerEventLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	ledger := repositories.Ledger{
		Accounts:     s.accounts,
		Transactions: s.transactions,
		Categories:   s.categories,
		Budgets:      s.budgets,
		Goals:        s.goals,
		Now:          time.Now,
	}

	deps := &services.LedgerDependencies{
		Persisted:            ledger,
		Demo:                 ledger,
		Identity:             s.identity,
		Reconciler:           s.reconciler,
		Events:               s.events,
		Metrics:              s.metrics,
		BudgetWarningPercent: 80,
	}
	s.service = services.NewLedgerService(deps, services.NewModeSelector(false, 16, time.Minute))
	s.userID = uuid.New()
}

func (s *LedgerServiceFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceFailureTestSuite) actAsUser() {
	s.identity.EXPECT().CurrentUser(gomock.Any()).Return(s.userID, true, nil).AnyTimes()
}

func (s *LedgerServiceFailureTestSuite) TestCreateTransaction_StaleBalanceReturnsRecordAndError() {
	s.actAsUser()
	accountID := uuid.New()
	txn := &models.Transaction{
		AccountID:       accountID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("42"),
		Date:            time.Now(),
	}
	stale := &services.StaleBalanceError{AccountID: accountID, Err: repositories.ErrStoreUnavailable}

	s.accounts.EXPECT().GetByID(gomock.Any(), s.userID, accountID).Return(&models.Account{ID: accountID}, nil)
	s.transactions.EXPECT().Create(gomock.Any(), txn).Return(nil)
	s.reconciler.EXPECT().Reconcile(gomock.Any(), s.userID, accountID).Return(decimal.Zero, stale)

	created, err := s.service.CreateTransaction(s.ctx, txn)

	s.Require().NotNil(created)
	s.Equal(s.userID, created.UserID)
	s.ErrorIs(err, services.ErrReconciliationWriteFailed)

	var staleErr *services.StaleBalanceError
	s.Require().True(errors.As(err, &staleErr))
	s.Equal(accountID, staleErr.AccountID)
}

func (s *LedgerServiceFailureTestSuite) TestUpdateTransaction_ReconcilesOldAndNewAccountsOnce() {
	s.actAsUser()
	oldAccount, newAccount := uuid.New(), uuid.New()
	id := uuid.New()
	existing := &models.Transaction{
		ID:              id,
		UserID:          s.userID,
		AccountID:       oldAccount,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("10"),
	}
	edited := &models.Transaction{
		ID:              id,
		AccountID:       newAccount,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("12"),
		Date:            time.Now(),
	}

	s.transactions.EXPECT().GetByID(gomock.Any(), s.userID, id).Return(existing, nil)
	s.accounts.EXPECT().GetByID(gomock.Any(), s.userID, newAccount).Return(&models.Account{ID: newAccount}, nil)
	s.transactions.EXPECT().Update(gomock.Any(), edited).Return(nil)
	s.reconciler.EXPECT().Reconcile(gomock.Any(), s.userID, oldAccount).Return(decimal.Zero, nil).Times(1)
	s.reconciler.EXPECT().Reconcile(gomock.Any(), s.userID, newAccount).Return(decimal.Zero, nil).Times(1)

	_, err := s.service.UpdateTransaction(s.ctx, edited)
	s.NoError(err)
}

func (s *LedgerServiceFailureTestSuite) TestReconcileFailures_AreJoined() {
	s.actAsUser()
	source, destination := uuid.New(), uuid.New()
	id := uuid.New()
	existing := &models.Transaction{
		ID:                id,
		UserID:            s.userID,
		AccountID:         source,
		TransferAccountID: &destination,
		TransactionType:   models.TransactionTypeTransfer,
		Amount:            decimal.RequireFromString("75"),
	}

	s.transactions.EXPECT().GetByID(gomock.Any(), s.userID, id).Return(existing, nil)
	s.transactions.EXPECT().Delete(gomock.Any(), s.userID, id).Return(nil)
	s.reconciler.EXPECT().Reconcile(gomock.Any(), s.userID, source).
		Return(decimal.Zero, &services.StaleBalanceError{AccountID: source, Err: errors.New("disk full")})
	s.reconciler.EXPECT().Reconcile(gomock.Any(), s.userID, destination).Return(decimal.RequireFromString("75"), nil)

	err := s.service.DeleteTransaction(s.ctx, id)

	s.ErrorIs(err, services.ErrReconciliationWriteFailed)
	var stale *services.StaleBalanceError
	s.Require().True(errors.As(err, &stale))
	s.Equal(source, stale.AccountID)
}

func (s *LedgerServiceFailureTestSuite) TestStaleBalances_CollectsEveryLeg() {
	source, destination := uuid.New(), uuid.New()
	err := fmt.Errorf("failed to post transfer: %w", errors.Join(
		&services.StaleBalanceError{AccountID: source, Err: errors.New("disk full")},
		errors.New("unrelated"),
		&services.StaleBalanceError{AccountID: destination, Err: errors.New("disk full")},
	))

	stale := services.StaleBalances(err)

	s.Require().Len(stale, 2)
	s.Equal(source, stale[0].AccountID)
	s.Equal(destination, stale[1].AccountID)
	s.Empty(services.StaleBalances(errors.New("plain")))
	s.Empty(services.StaleBalances(nil))
}

func (s *LedgerServiceFailureTestSuite) TestListAccounts_StoreUnavailable() {
	s.actAsUser()
	s.accounts.EXPECT().ListByUser(gomock.Any(), s.userID).
		Return(nil, fmt.Errorf("list accounts: %w", repositories.ErrStoreUnavailable))

	accounts, err := s.service.ListAccounts(s.ctx)

	s.Nil(accounts)
	s.ErrorIs(err, repositories.ErrStoreUnavailable)
}

func (s *LedgerServiceFailureTestSuite) TestIdentityFailurePropagates() {
	s.identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.Nil, false, errors.New("identity provider down"))

	_, err := s.service.ListGoals(s.ctx)
	s.ErrorContains(err, "identity provider down")
}

func (s *LedgerServiceFailureTestSuite) TestDemonstrationWrites_RejectedBeforeStore() {
	s.events.EXPECT().LogModeTransition(gomock.Any(), "persisted", "demonstration")
	s.metrics.EXPECT().IncrementCounter("mode_transition", map[string]string{"to": "demonstration"})
	s.Require().True(s.service.SwitchMode(s.ctx, services.ModeDemonstration))

	s.events.EXPECT().LogDemoWriteRejected(gomock.Any(), "create_budget")
	s.metrics.EXPECT().IncrementCounter("demo_write_rejected", map[string]string{"operation": "create_budget"})
	s.events.EXPECT().LogDemoWriteRejected(gomock.Any(), "reconcile_account")
	s.metrics.EXPECT().IncrementCounter("demo_write_rejected", map[string]string{"operation": "reconcile_account"})

	_, err := s.service.CreateBudget(s.ctx, &models.Budget{Amount: decimal.RequireFromString("10")})
	s.ErrorIs(err, services.ErrDemonstrationWriteRejected)

	_, err = s.service.ReconcileAccount(s.ctx, uuid.New())
	s.ErrorIs(err, services.ErrDemonstrationWriteRejected)
}

func (s *LedgerServiceFailureTestSuite) TestDashboard_FanOutFailure() {
	s.actAsUser()
	s.accounts.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]models.Account{}, nil).AnyTimes()
	s.transactions.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).Return([]models.Transaction{}, nil).AnyTimes()
	s.budgets.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]models.Budget{}, nil).AnyTimes()
	s.goals.EXPECT().ListByUser(gomock.Any(), s.userID).
		Return(nil, fmt.Errorf("list goals: %w", repositories.ErrStoreUnavailable))

	dashboard, err := s.service.GetDashboard(s.ctx)

	s.Nil(dashboard)
	s.ErrorIs(err, repositories.ErrStoreUnavailable)
}

func (s *LedgerServiceFailureTestSuite) TestDashboard_ServedFromCacheUntilWrite() {
	s.actAsUser()
	s.metrics.EXPECT().RecordProcessingTime("dashboard", gomock.Any()).Times(3)
	s.accounts.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]models.Account{
		{Balance: decimal.RequireFromString("12.50")},
	}, nil).Times(2)
	s.transactions.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).Return([]models.Transaction{}, nil).Times(4)
	s.budgets.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]models.Budget{}, nil).Times(2)
	s.goals.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]models.FinancialGoal{}, nil).Times(2)

	first, err := s.service.GetDashboard(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.GetDashboard(s.ctx)
	s.Require().NoError(err)
	s.Same(first, second)

	s.goals.EXPECT().Delete(gomock.Any(), s.userID, gomock.Any()).Return(nil)
	s.Require().NoError(s.service.DeleteGoal(s.ctx, uuid.New()))

	third, err := s.service.GetDashboard(s.ctx)
	s.Require().NoError(err)
	s.NotSame(first, third)
	s.Equal("12.50", models.FormatAmount(third.TotalBalance))
}
