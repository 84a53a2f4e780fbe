package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const recentTransactionsLimit = 5

// cachedView serves a demonstration view from the session cache or computes
// and caches it. Persisted views are always computed: any session, or another
// process, may have written since. A result computed across a transition is
// returned but not cached.
func cachedView[T any](s *ledgerService, src ledgerSource, view string, compute func() (T, error)) (T, error) {
	if src.mode != ModeDemonstration {
		return compute()
	}

	key := src.cacheKey(view)
	if value, ok := s.selector.cached(key); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	s.selector.store(src.generation, key, value)
	return value, nil
}

// GetDashboard assembles the overview: total balance, this month's totals,
// recent transactions, goals and budget totals.
func (s *ledgerService) GetDashboard(ctx context.Context) (*models.DashboardSummary, error) {
	start := time.Now()

	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}

	month := models.CurrentMonthWindow(src.now())
	if !src.authenticated {
		return &models.DashboardSummary{
			Mode:               string(src.mode),
			TotalBalance:       decimal.Zero,
			MonthWindow:        month,
			Month:              AggregatePeriod(nil, month),
			RecentTransactions: []models.Transaction{},
			Goals:              []models.GoalStatus{},
			TotalSaved:         decimal.Zero,
			TotalBudgeted:      decimal.Zero,
			TotalSpent:         decimal.Zero,
		}, nil
	}

	summary, err := cachedView(s, src, "dashboard", func() (*models.DashboardSummary, error) {
		return s.buildDashboard(ctx, src, month)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Metrics.RecordProcessingTime("dashboard", time.Since(start))
	return summary, nil
}

func (s *ledgerService) buildDashboard(ctx context.Context, src ledgerSource, month models.Window) (*models.DashboardSummary, error) {
	var (
		accounts []models.Account
		monthly  []models.Transaction
		recent   []models.Transaction
		goals    []models.FinancialGoal
		budgets  []models.Budget
	)
	monthStart, monthEnd := month.Start, month.End

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if accounts, err = src.ledger.Accounts.ListByUser(gctx, src.userID); err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		filters := models.TransactionFilters{StartDate: &monthStart, EndDate: &monthEnd}
		if monthly, err = src.ledger.Transactions.List(gctx, src.userID, filters); err != nil {
			return fmt.Errorf("failed to list month transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recent, err = src.ledger.Transactions.List(gctx, src.userID, models.TransactionFilters{Limit: recentTransactionsLimit}); err != nil {
			return fmt.Errorf("failed to list recent transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if goals, err = src.ledger.Goals.ListByUser(gctx, src.userID); err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if budgets, err = src.ledger.Budgets.ListByUser(gctx, src.userID); err != nil {
			return fmt.Errorf("failed to list budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := src.now()
	budgetStatuses, err := s.budgetStatuses(ctx, src, budgets, now)
	if err != nil {
		return nil, err
	}

	totalBudgeted, totalSpent := decimal.Zero, decimal.Zero
	for i := range budgetStatuses {
		if budgetStatuses[i].Status == models.BudgetStatusInactive {
			continue
		}
		totalBudgeted = totalBudgeted.Add(budgetStatuses[i].Budget.Amount)
		totalSpent = totalSpent.Add(budgetStatuses[i].Spent)
	}

	if recent == nil {
		recent = []models.Transaction{}
	}

	return &models.DashboardSummary{
		Mode:               string(src.mode),
		TotalBalance:       models.TotalBalance(accounts),
		AccountCount:       len(accounts),
		MonthWindow:        month,
		Month:              AggregatePeriod(monthly, month),
		RecentTransactions: recent,
		Goals:              s.goalStatuses(ctx, goals, now),
		TotalSaved:         models.TotalSaved(goals),
		TotalBudgeted:      totalBudgeted,
		TotalSpent:         totalSpent,
	}, nil
}

// GetBudgetProgress evaluates every budget in the period containing asOf
func (s *ledgerService) GetBudgetProgress(ctx context.Context, asOf *time.Time) ([]models.BudgetStatus, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.BudgetStatus{}, nil
	}

	date := src.now()
	if asOf != nil {
		date = *asOf
	}

	return cachedView(s, src, "budgets/"+date.Format(time.DateOnly), func() ([]models.BudgetStatus, error) {
		budgets, err := src.ledger.Budgets.ListByUser(ctx, src.userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list budgets: %w", err)
		}
		return s.budgetStatuses(ctx, src, budgets, date)
	})
}

// budgetStatuses loads the expense transactions spanning every budget's
// window once and evaluates each budget against them.
func (s *ledgerService) budgetStatuses(ctx context.Context, src ledgerSource, budgets []models.Budget, asOf time.Time) ([]models.BudgetStatus, error) {
	statuses := make([]models.BudgetStatus, 0, len(budgets))
	if len(budgets) == 0 {
		return statuses, nil
	}

	var from, to time.Time
	for i := range budgets {
		w, err := models.BudgetWindow(&budgets[i], asOf)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve budget window: %w", err)
		}
		if from.IsZero() || w.Start.Before(from) {
			from = w.Start
		}
		if to.IsZero() || w.End.After(to) {
			to = w.End
		}
	}

	categories, err := src.ledger.Categories.ListByUser(ctx, src.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	names := make(map[uuid.UUID]string, len(categories))
	for i := range categories {
		names[categories[i].ID] = categories[i].Name
	}

	filters := models.TransactionFilters{
		Type:      models.TransactionTypeExpense,
		StartDate: &from,
		EndDate:   &to,
	}
	transactions, err := src.ledger.Transactions.List(ctx, src.userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget transactions: %w", err)
	}

	warning := decimal.NewFromInt(int64(s.deps.BudgetWarningPercent))
	for i := range budgets {
		status, err := BudgetProgress(&budgets[i], transactions, asOf, warning)
		if err != nil {
			if !errors.Is(err, ErrDivisionByZeroTarget) {
				return nil, err
			}
			s.reportProgressUnavailable(ctx, "budget", budgets[i].ID, err)
		}
		status.CategoryName = names[budgets[i].CategoryID]
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// GetGoalProgress evaluates every savings goal as of the source's current date
func (s *ledgerService) GetGoalProgress(ctx context.Context) ([]models.GoalStatus, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.GoalStatus{}, nil
	}

	return cachedView(s, src, "goals", func() ([]models.GoalStatus, error) {
		goals, err := src.ledger.Goals.ListByUser(ctx, src.userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		return s.goalStatuses(ctx, goals, src.now()), nil
	})
}

func (s *ledgerService) goalStatuses(ctx context.Context, goals []models.FinancialGoal, now time.Time) []models.GoalStatus {
	statuses := make([]models.GoalStatus, 0, len(goals))
	for i := range goals {
		status, err := GoalProgress(&goals[i], now)
		if err != nil {
			s.reportProgressUnavailable(ctx, "goal", goals[i].ID, err)
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// GetCategoryBreakdown totals income and expense per category over window
func (s *ledgerService) GetCategoryBreakdown(ctx context.Context, window models.Window) ([]models.CategoryTotal, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.CategoryTotal{}, nil
	}

	view := fmt.Sprintf("categories/%s/%s", window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly))
	return cachedView(s, src, view, func() ([]models.CategoryTotal, error) {
		start, end := window.Start, window.End
		transactions, err := src.ledger.Transactions.List(ctx, src.userID, models.TransactionFilters{
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}

		categories, err := src.ledger.Categories.ListByUser(ctx, src.userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}

		return AggregateByCategory(transactions, window, categories), nil
	})
}

func (s *ledgerService) reportProgressUnavailable(ctx context.Context, entityType string, id uuid.UUID, err error) {
	s.deps.Events.LogProgressUnavailable(ctx, entityType, id, err.Error())
	s.deps.Metrics.IncrementCounter("progress_unavailable", map[string]string{"entity_type": entityType})
}
