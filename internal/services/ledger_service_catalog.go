package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// ListCategories lists the acting user's categories
func (s *ledgerService) ListCategories(ctx context.Context) ([]models.Category, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.Category{}, nil
	}

	categories, err := src.ledger.Categories.ListByUser(ctx, src.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves one category
func (s *ledgerService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	src, err := s.entitySource(ctx)
	if err != nil {
		return nil, err
	}

	category, err := src.ledger.Categories.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// CreateCategory stores a new category
func (s *ledgerService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	src, err := s.writeSource(ctx, "create_category")
	if err != nil {
		return nil, err
	}

	category.UserID = src.userID
	if err := src.ledger.Categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// UpdateCategory rewrites a category. Changing its type is refused while
// transactions of the old type still reference it.
func (s *ledgerService) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	src, err := s.writeSource(ctx, "update_category")
	if err != nil {
		return nil, err
	}

	existing, err := src.ledger.Categories.GetByID(ctx, src.userID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	category.UserID = src.userID
	category.CreatedAt = existing.CreatedAt

	if existing.CategoryType != category.CategoryType {
		transactions, err := src.ledger.Transactions.List(ctx, src.userID, models.TransactionFilters{CategoryID: &category.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list category transactions: %w", err)
		}
		for i := range transactions {
			if !category.Accepts(transactions[i].TransactionType) {
				return nil, fmt.Errorf("%w: category %q is used by %s transactions",
					ErrCategoryTypeMismatch, existing.Name, transactions[i].TransactionType)
			}
		}
	}

	if err := src.ledger.Categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category. Its transactions become uncategorised
// and its budgets are dropped.
func (s *ledgerService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	src, err := s.writeSource(ctx, "delete_category")
	if err != nil {
		return err
	}

	if err := src.ledger.Categories.Delete(ctx, src.userID, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// ListBudgets lists the acting user's budgets
func (s *ledgerService) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.Budget{}, nil
	}

	budgets, err := src.ledger.Budgets.ListByUser(ctx, src.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// GetBudget retrieves one budget
func (s *ledgerService) GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	src, err := s.entitySource(ctx)
	if err != nil {
		return nil, err
	}

	budget, err := src.ledger.Budgets.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// CreateBudget stores a new budget over an expense category
func (s *ledgerService) CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	src, err := s.writeSource(ctx, "create_budget")
	if err != nil {
		return nil, err
	}

	budget.UserID = src.userID
	if err := s.checkBudgetCategory(ctx, src, budget.CategoryID); err != nil {
		return nil, err
	}

	if err := src.ledger.Budgets.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return budget, nil
}

// UpdateBudget rewrites a budget
func (s *ledgerService) UpdateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	src, err := s.writeSource(ctx, "update_budget")
	if err != nil {
		return nil, err
	}

	existing, err := src.ledger.Budgets.GetByID(ctx, src.userID, budget.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	budget.UserID = src.userID
	budget.CreatedAt = existing.CreatedAt
	if err := s.checkBudgetCategory(ctx, src, budget.CategoryID); err != nil {
		return nil, err
	}

	if err := src.ledger.Budgets.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}

// DeleteBudget removes a budget
func (s *ledgerService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	src, err := s.writeSource(ctx, "delete_budget")
	if err != nil {
		return err
	}

	if err := src.ledger.Budgets.Delete(ctx, src.userID, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

func (s *ledgerService) checkBudgetCategory(ctx context.Context, src ledgerSource, categoryID uuid.UUID) error {
	category, err := src.ledger.Categories.GetByID(ctx, src.userID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category.CategoryType != models.CategoryTypeExpense {
		return fmt.Errorf("%w: budgets track expense categories, %q is %s",
			ErrCategoryTypeMismatch, category.Name, category.CategoryType)
	}
	return nil
}

// ListGoals lists the acting user's savings goals
func (s *ledgerService) ListGoals(ctx context.Context) ([]models.FinancialGoal, error) {
	src, err := s.readSource(ctx)
	if err != nil {
		return nil, err
	}
	if !src.authenticated {
		return []models.FinancialGoal{}, nil
	}

	goals, err := src.ledger.Goals.ListByUser(ctx, src.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// GetGoal retrieves one savings goal
func (s *ledgerService) GetGoal(ctx context.Context, id uuid.UUID) (*models.FinancialGoal, error) {
	src, err := s.entitySource(ctx)
	if err != nil {
		return nil, err
	}

	goal, err := src.ledger.Goals.GetByID(ctx, src.userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// CreateGoal stores a new savings goal
func (s *ledgerService) CreateGoal(ctx context.Context, goal *models.FinancialGoal) (*models.FinancialGoal, error) {
	src, err := s.writeSource(ctx, "create_goal")
	if err != nil {
		return nil, err
	}

	goal.UserID = src.userID
	if err := src.ledger.Goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// UpdateGoal rewrites a savings goal
func (s *ledgerService) UpdateGoal(ctx context.Context, goal *models.FinancialGoal) (*models.FinancialGoal, error) {
	src, err := s.writeSource(ctx, "update_goal")
	if err != nil {
		return nil, err
	}

	existing, err := src.ledger.Goals.GetByID(ctx, src.userID, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	goal.UserID = src.userID
	goal.CreatedAt = existing.CreatedAt
	if err := src.ledger.Goals.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes a savings goal
func (s *ledgerService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	src, err := s.writeSource(ctx, "delete_goal")
	if err != nil {
		return err
	}

	if err := src.ledger.Goals.Delete(ctx, src.userID, id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
