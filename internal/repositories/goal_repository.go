package repositories

import (
	"context"
	"errors"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db    *gorm.DB
	guard *StoreGuard
}

// NewGoalRepository creates a new financial goal repository
func NewGoalRepository(db *gorm.DB, guard *StoreGuard) GoalRepositoryInterface {
	return &goalRepository{
		db:    db,
		guard: guard,
	}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.FinancialGoal) error {
	if err := goal.Validate(); err != nil {
		return err
	}

	return r.guard.Run("create goal", func() error {
		return r.db.WithContext(ctx).Create(goal).Error
	})
}

func (r *goalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	err := r.guard.Run("get goal", func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// ListByUser returns open goals first, nearest target date first
func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	err := r.guard.Run("list goals", func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).
			Order("is_completed ASC, target_date ASC, created_at ASC").Find(&goals).Error
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.FinancialGoal) error {
	if err := goal.Validate(); err != nil {
		return err
	}

	var rows int64
	err := r.guard.Run("update goal", func() error {
		result := r.db.WithContext(ctx).Model(goal).
			Where("user_id = ?", goal.UserID).
			Select("name", "description", "target_amount", "current_amount", "target_date", "is_completed", "updated_at").
			Updates(goal)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var rows int64
	err := r.guard.Run("delete goal", func() error {
		result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.FinancialGoal{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
