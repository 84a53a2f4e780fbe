package repositories

import (
	"context"
	"errors"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db    *gorm.DB
	guard *StoreGuard
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB, guard *StoreGuard) BudgetRepositoryInterface {
	return &budgetRepository{
		db:    db,
		guard: guard,
	}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	return r.guard.Run("create budget", func() error {
		return r.db.WithContext(ctx).Create(budget).Error
	})
}

func (r *budgetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	err := r.guard.Run("get budget", func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&budget).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.guard.Run("list budgets", func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&budgets).Error
	})
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	var rows int64
	err := r.guard.Run("update budget", func() error {
		result := r.db.WithContext(ctx).Model(budget).
			Where("user_id = ?", budget.UserID).
			Select("category_id", "amount", "period", "start_date", "end_date", "is_active", "updated_at").
			Updates(budget)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var rows int64
	err := r.guard.Run("delete budget", func() error {
		result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
