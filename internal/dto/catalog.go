package dto

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRequest represents the payload for creating or updating a category
type CategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	CategoryType string `json:"category_type" validate:"required,category_type"`
	Color        string `json:"color" validate:"omitempty,hexcolor"`
	Icon         string `json:"icon" validate:"omitempty,max=50"`
}

// ToModel converts the request into a category
func (r CategoryRequest) ToModel() *models.Category {
	return &models.Category{
		Name:         r.Name,
		CategoryType: r.CategoryType,
		Color:        r.Color,
		Icon:         r.Icon,
	}
}

// BudgetRequest represents the payload for creating or updating a budget
type BudgetRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Amount     string `json:"amount" validate:"required,amount"`
	Period     string `json:"period" validate:"required,budget_period"`
	StartDate  string `json:"start_date" validate:"omitempty,civil_date"`
	EndDate    string `json:"end_date" validate:"omitempty,civil_date"`
	IsActive   *bool  `json:"is_active"`
}

// ToModel converts the request into a budget. Budgets are active unless the
// request says otherwise.
func (r BudgetRequest) ToModel() (*models.Budget, error) {
	categoryID, err := uuid.Parse(r.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category_id: %w", err)
	}

	amount, err := models.ParseAmount(r.Amount)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Period:     r.Period,
		IsActive:   r.IsActive == nil || *r.IsActive,
	}

	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	if start != nil {
		budget.StartDate = *start
	}
	if budget.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return nil, err
	}

	return budget, nil
}

// GoalRequest represents the payload for creating or updating a financial goal
type GoalRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Description   string `json:"description" validate:"omitempty,max=1000"`
	TargetAmount  string `json:"target_amount" validate:"required,amount"`
	CurrentAmount string `json:"current_amount" validate:"omitempty,amount"`
	TargetDate    string `json:"target_date" validate:"omitempty,civil_date"`
	IsCompleted   bool   `json:"is_completed"`
}

// ToModel converts the request into a goal
func (r GoalRequest) ToModel() (*models.FinancialGoal, error) {
	target, err := models.ParseAmount(r.TargetAmount)
	if err != nil {
		return nil, err
	}

	current := decimal.Zero
	if r.CurrentAmount != "" {
		if current, err = models.ParseAmount(r.CurrentAmount); err != nil {
			return nil, err
		}
	}

	goal := &models.FinancialGoal{
		Name:          r.Name,
		Description:   r.Description,
		TargetAmount:  target,
		CurrentAmount: current,
		IsCompleted:   r.IsCompleted,
	}
	if goal.TargetDate, err = parseOptionalDate(r.TargetDate); err != nil {
		return nil, err
	}

	return goal, nil
}

// BudgetProgressQuery selects the date whose budget periods are evaluated
type BudgetProgressQuery struct {
	AsOf string `query:"as_of" validate:"omitempty,civil_date"`
}

// AsOfDate returns nil when the client did not pin a date
func (q BudgetProgressQuery) AsOfDate() (*time.Time, error) {
	return parseOptionalDate(q.AsOf)
}
