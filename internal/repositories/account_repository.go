package repositories

import (
	"context"
	"errors"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db    *gorm.DB
	guard *StoreGuard
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB, guard *StoreGuard) AccountRepositoryInterface {
	return &accountRepository{
		db:    db,
		guard: guard,
	}
}

// Create creates the account and its opening transactions in one database transaction
func (r *accountRepository) Create(ctx context.Context, account *models.Account, openingTransactions ...models.Transaction) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	for i := range openingTransactions {
		openingTransactions[i].AccountID = account.ID
		openingTransactions[i].UserID = account.UserID
		if err := openingTransactions[i].Validate(); err != nil {
			return err
		}
	}

	return r.guard.Run("create account", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(account).Error; err != nil {
				return err
			}
			if len(openingTransactions) == 0 {
				return nil
			}
			return tx.Create(&openingTransactions).Error
		})
	})
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.guard.Run("get account", func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&account).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ListByUser retrieves all accounts for a user
func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	err := r.guard.Run("list accounts", func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update updates an account's descriptive fields
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	account.UpdatedAt = time.Now()
	var rows int64
	err := r.guard.Run("update account", func() error {
		result := r.db.WithContext(ctx).Model(&models.Account{}).
			Where("id = ? AND user_id = ?", account.ID, account.UserID).
			Updates(map[string]interface{}{
				"name":         account.Name,
				"account_type": account.AccountType,
				"bank_name":    account.BankName,
				"currency":     account.Currency,
				"is_active":    account.IsActive,
				"updated_at":   account.UpdatedAt,
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// UpdateBalance locks the account row and overwrites its cached balance
func (r *accountRepository) UpdateBalance(ctx context.Context, userID, id uuid.UUID, balance decimal.Decimal) error {
	err := r.guard.Run("update account balance", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var account models.Account
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND user_id = ?", id, userID).
				First(&account).Error; err != nil {
				return err
			}

			return tx.Model(&account).Updates(map[string]interface{}{
				"balance":    balance,
				"updated_at": time.Now(),
			}).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// Delete removes the account and every transaction on either side of it
func (r *accountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.guard.Run("delete account", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ? AND (account_id = ? OR transfer_account_id = ?)", userID, id, id).
				Delete(&models.Transaction{}).Error; err != nil {
				return err
			}

			result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrAccountNotFound
			}
			return nil
		})
	})
}
