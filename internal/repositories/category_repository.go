package repositories

import (
	"context"
	"errors"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db    *gorm.DB
	guard *StoreGuard
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB, guard *StoreGuard) CategoryRepositoryInterface {
	return &categoryRepository{
		db:    db,
		guard: guard,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	return r.guard.Run("create category", func() error {
		return r.db.WithContext(ctx).Create(category).Error
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.guard.Run("get category", func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.guard.Run("list categories", func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).
			Order("category_type ASC, name ASC").Find(&categories).Error
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	var rows int64
	err := r.guard.Run("update category", func() error {
		result := r.db.WithContext(ctx).Model(category).
			Where("user_id = ?", category.UserID).
			Select("name", "category_type", "color", "icon", "updated_at").
			Updates(category)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete clears the category from transactions, removes its budgets, then the category itself
func (r *categoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.guard.Run("delete category", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Transaction{}).
				Where("user_id = ? AND category_id = ?", userID, id).
				UpdateColumn("category_id", nil).Error; err != nil {
				return err
			}

			if err := tx.Where("user_id = ? AND category_id = ?", userID, id).
				Delete(&models.Budget{}).Error; err != nil {
				return err
			}

			result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrCategoryNotFound
			}
			return nil
		})
	})
}
