package repositories

import (
	"context"
	"errors"
	"strings"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db    *gorm.DB
	guard *StoreGuard
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB, guard *StoreGuard) TransactionRepositoryInterface {
	return &transactionRepository{
		db:    db,
		guard: guard,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	return r.guard.Run("create transaction", func() error {
		return r.db.WithContext(ctx).Create(transaction).Error
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.guard.Run("get transaction", func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// List retrieves a user's transactions, newest first, narrowed by filters
func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filters.AccountID != nil {
		query = query.Where("(account_id = ? OR transfer_account_id = ?)", *filters.AccountID, *filters.AccountID)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", models.CivilDate(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date < ?", models.CivilDate(*filters.EndDate))
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		accounts := r.db.Model(&models.Account{}).Select("id").
			Where("user_id = ? AND LOWER(name) LIKE ?", userID, pattern)
		query = query.Where(
			"(LOWER(description) LIKE ? OR LOWER(merchant) LIKE ? OR LOWER(location) LIKE ? OR account_id IN (?))",
			pattern, pattern, pattern, accounts,
		)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var transactions []models.Transaction
	err := r.guard.Run("list transactions", func() error {
		return query.Order("date DESC, created_at DESC").Find(&transactions).Error
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListForAccount retrieves every transaction on either side of an account
func (r *transactionRepository) ListForAccount(ctx context.Context, userID, accountID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.guard.Run("list account transactions", func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND (account_id = ? OR transfer_account_id = ?)", userID, accountID, accountID).
			Order("date ASC, created_at ASC").
			Find(&transactions).Error
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Update replaces every mutable field of a transaction
func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	var rows int64
	err := r.guard.Run("update transaction", func() error {
		result := r.db.WithContext(ctx).Model(transaction).
			Where("user_id = ?", transaction.UserID).
			Select("*").Omit("id", "user_id", "created_at").
			Updates(transaction)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var rows int64
	err := r.guard.Run("delete transaction", func() error {
		result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
