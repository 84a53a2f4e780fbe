package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		target    string
		percent   string
		display   string
		remaining string
		overage   string
		over      bool
	}{
		{name: "nothing yet", current: "0", target: "100", percent: "0", display: "0", remaining: "100", overage: "0"},
		{name: "part way", current: "325.50", target: "500", percent: "65.1", display: "65.1", remaining: "174.5", overage: "0"},
		{name: "exactly on target", current: "100", target: "100", percent: "100", display: "100", remaining: "0", overage: "0"},
		{name: "over target", current: "150", target: "100", percent: "150", display: "100", remaining: "0", overage: "50", over: true},
		{name: "overshoot below percent precision", current: "1000000.01", target: "1000000", percent: "100", display: "100", remaining: "0", overage: "0.01", over: true},
		{name: "repeating fraction", current: "1", target: "3", percent: "33.3333", display: "33.3333", remaining: "2", overage: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, err := CalculateProgress(amount(tt.current), amount(tt.target))
			require.NoError(t, err)

			assert.True(t, progress.Percent.Equal(amount(tt.percent)), "percent %s", progress.Percent)
			assert.True(t, progress.DisplayPercent.Equal(amount(tt.display)), "display %s", progress.DisplayPercent)
			assert.True(t, progress.Remaining.Equal(amount(tt.remaining)), "remaining %s", progress.Remaining)
			assert.True(t, progress.Overage.Equal(amount(tt.overage)), "overage %s", progress.Overage)
			assert.Equal(t, tt.over, progress.IsOverTarget)
		})
	}
}

func TestCalculateProgress_ZeroTarget(t *testing.T) {
	for _, current := range []string{"0", "1", "999.99"} {
		_, err := CalculateProgress(amount(current), decimal.Zero)
		assert.ErrorIs(t, err, ErrDivisionByZeroTarget, "current %s", current)
	}
}

func groceriesBudget(budgetAmount string) (*models.Budget, uuid.UUID) {
	categoryID := uuid.New()
	return &models.Budget{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     amount(budgetAmount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  civil(2026, time.January, 1),
		IsActive:   true,
	}, categoryID
}

func TestBudgetProgress_Monthly(t *testing.T) {
	budget, categoryID := groceriesBudget("500.00")
	other := uuid.New()

	transactions := []models.Transaction{
		{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount("180.25"), Date: civil(2026, time.October, 2)},
		{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount("145.25"), Date: civil(2026, time.October, 6)},
		{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount("212.40"), Date: civil(2026, time.September, 12)},
		{CategoryID: &other, TransactionType: models.TransactionTypeExpense, Amount: amount("95"), Date: civil(2026, time.October, 8)},
		{TransactionType: models.TransactionTypeExpense, Amount: amount("40"), Date: civil(2026, time.October, 9)},
	}

	asOf := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	status, err := BudgetProgress(budget, transactions, asOf, decimal.NewFromInt(80))
	require.NoError(t, err)

	assert.Equal(t, "325.50", models.FormatAmount(status.Spent))
	require.NotNil(t, status.Progress)
	assert.True(t, status.Progress.Percent.Equal(amount("65.1")))
	assert.False(t, status.Progress.IsOverTarget)
	assert.Equal(t, models.BudgetStatusOnTrack, status.Status)
	assert.Equal(t, civil(2026, time.October, 1), status.Window.Start)
	assert.Equal(t, civil(2026, time.November, 1), status.Window.End)
}

func TestBudgetProgress_Statuses(t *testing.T) {
	asOf := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		spent  string
		active bool
		want   string
	}{
		{name: "warning above threshold", spent: "90.01", active: true, want: models.BudgetStatusWarning},
		{name: "at threshold is on track", spent: "80", active: true, want: models.BudgetStatusOnTrack},
		{name: "over", spent: "100.01", active: true, want: models.BudgetStatusOver},
		{name: "inactive", spent: "150", active: false, want: models.BudgetStatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget, categoryID := groceriesBudget("100")
			budget.IsActive = tt.active
			transactions := []models.Transaction{
				{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount(tt.spent), Date: civil(2026, time.October, 3)},
			}

			status, err := BudgetProgress(budget, transactions, asOf, decimal.NewFromInt(80))
			require.NoError(t, err)
			assert.Equal(t, tt.want, status.Status)
		})
	}
}

func TestBudgetProgress_OutsideBudgetDates(t *testing.T) {
	budget, categoryID := groceriesBudget("100")
	end := civil(2026, time.August, 31)
	budget.EndDate = &end
	transactions := []models.Transaction{
		{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount("50"), Date: civil(2026, time.October, 3)},
	}

	status, err := BudgetProgress(budget, transactions, civil(2026, time.October, 15), decimal.NewFromInt(80))
	require.NoError(t, err)
	assert.True(t, status.Window.IsEmpty())
	assert.True(t, status.Spent.IsZero())
	assert.Equal(t, models.BudgetStatusInactive, status.Status)
}

func TestBudgetProgress_ZeroAmount(t *testing.T) {
	budget, categoryID := groceriesBudget("0")
	transactions := []models.Transaction{
		{CategoryID: &categoryID, TransactionType: models.TransactionTypeExpense, Amount: amount("12.50"), Date: civil(2026, time.October, 3)},
	}

	status, err := BudgetProgress(budget, transactions, civil(2026, time.October, 15), decimal.NewFromInt(80))
	require.ErrorIs(t, err, ErrDivisionByZeroTarget)
	assert.Nil(t, status.Progress)
	assert.Equal(t, ErrDivisionByZeroTarget.Error(), status.ProgressError)
	assert.Equal(t, "12.50", models.FormatAmount(status.Spent))
	assert.Equal(t, models.BudgetStatusOver, status.Status)
}

func TestGoalProgress(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	target := civil(2027, time.June, 30)

	status, err := GoalProgress(&models.FinancialGoal{
		ID:            uuid.New(),
		Name:          "Emergency Fund",
		TargetAmount:  amount("10000"),
		CurrentAmount: amount("6500"),
		TargetDate:    &target,
	}, now)
	require.NoError(t, err)

	require.NotNil(t, status.Progress)
	assert.True(t, status.Progress.Percent.Equal(amount("65")))
	assert.Equal(t, "3500.00", models.FormatAmount(status.Progress.Remaining))
	require.NotNil(t, status.DaysRemaining)
	assert.Equal(t, 258, *status.DaysRemaining)
	assert.False(t, status.ReachedTarget)
}

func TestGoalProgress_ReachedAndOverdue(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	past := civil(2026, time.August, 31)

	status, err := GoalProgress(&models.FinancialGoal{
		TargetAmount:  amount("1500"),
		CurrentAmount: amount("1500"),
		TargetDate:    &past,
		IsCompleted:   true,
	}, now)
	require.NoError(t, err)

	assert.True(t, status.ReachedTarget)
	require.NotNil(t, status.DaysRemaining)
	assert.Negative(t, *status.DaysRemaining)
}

func TestGoalProgress_ZeroTarget(t *testing.T) {
	status, err := GoalProgress(&models.FinancialGoal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: amount("10"),
	}, time.Now())

	require.ErrorIs(t, err, ErrDivisionByZeroTarget)
	assert.Nil(t, status.Progress)
	assert.NotEmpty(t, status.ProgressError)
	assert.Nil(t, status.DaysRemaining)
	assert.True(t, status.ReachedTarget)
}
