package services

import (
	"fmt"
	"math"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const percentScale = 4

var hundred = decimal.NewFromInt(100)

// CalculateProgress measures current against target. A zero target has no
// meaningful percentage and yields ErrDivisionByZeroTarget.
func CalculateProgress(current, target decimal.Decimal) (models.Progress, error) {
	if target.IsZero() {
		return models.Progress{}, ErrDivisionByZeroTarget
	}

	percent := current.Mul(hundred).DivRound(target, percentScale)

	display := percent
	if display.GreaterThan(hundred) {
		display = hundred
	}
	if display.IsNegative() {
		display = decimal.Zero
	}

	remaining := target.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	overage := current.Sub(target)
	if overage.IsNegative() {
		overage = decimal.Zero
	}

	// Compared on the exact ratio; percent is rounded.
	over := current.GreaterThan(target)
	if target.IsNegative() {
		over = current.LessThan(target)
	}

	return models.Progress{
		Percent:        percent,
		DisplayPercent: display,
		Remaining:      remaining,
		Overage:        overage,
		IsOverTarget:   over,
	}, nil
}

// BudgetProgress derives a budget's spending in the period containing asOf.
// Only expense transactions in the budget's category count. When the budget
// amount is zero the status is returned together with ErrDivisionByZeroTarget.
func BudgetProgress(budget *models.Budget, transactions []models.Transaction, asOf time.Time, warningPercent decimal.Decimal) (models.BudgetStatus, error) {
	window, err := models.BudgetWindow(budget, asOf)
	if err != nil {
		return models.BudgetStatus{}, fmt.Errorf("failed to resolve budget window: %w", err)
	}

	inCategory := make([]models.Transaction, 0)
	for i := range transactions {
		if id := transactions[i].CategoryID; id != nil && *id == budget.CategoryID {
			inCategory = append(inCategory, transactions[i])
		}
	}

	spent := AggregatePeriod(inCategory, window).ExpenseTotal
	status := models.BudgetStatus{
		Budget: *budget,
		Window: window,
		Spent:  spent,
	}

	progress, err := CalculateProgress(spent, budget.Amount)
	if err != nil {
		status.ProgressError = err.Error()
		status.Status = models.BudgetStatusOnTrack
		if spent.IsPositive() {
			status.Status = models.BudgetStatusOver
		}
	} else {
		status.Progress = &progress
		switch {
		case progress.IsOverTarget:
			status.Status = models.BudgetStatusOver
		case progress.Percent.GreaterThan(warningPercent):
			status.Status = models.BudgetStatusWarning
		default:
			status.Status = models.BudgetStatusOnTrack
		}
	}

	if !budget.IsActive || window.IsEmpty() {
		status.Status = models.BudgetStatusInactive
	}

	return status, err
}

// GoalProgress derives a goal's progress as of now. A zero-target goal keeps a
// nil Progress, records the reason in ProgressError and returns the error.
func GoalProgress(goal *models.FinancialGoal, now time.Time) (models.GoalStatus, error) {
	status := models.GoalStatus{
		Goal:          *goal,
		ReachedTarget: goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount),
	}

	if goal.TargetDate != nil {
		y, m, d := goal.TargetDate.Date()
		due := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		days := int(math.Ceil(due.Sub(now).Hours() / 24))
		status.DaysRemaining = &days
	}

	progress, err := CalculateProgress(goal.CurrentAmount, goal.TargetAmount)
	if err != nil {
		status.ProgressError = err.Error()
		return status, err
	}
	status.Progress = &progress
	return status, nil
}
