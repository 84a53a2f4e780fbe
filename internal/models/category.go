package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"

	DefaultCategoryColor = "#6B7280"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameMissing = errors.New("category name is required")
)

// Category groups transactions for budgeting and breakdowns.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	CategoryType string    `gorm:"type:varchar(20);not null" json:"category_type"`
	Color        string    `gorm:"type:varchar(7)" json:"color"`
	Icon         string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrUserIDRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameMissing
	}
	if !IsValidCategoryType(c.CategoryType) {
		return ErrInvalidCategoryType
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// Accepts reports whether a transaction of the given type may reference this
// category. Transfers may reference any category.
func (c *Category) Accepts(transactionType string) bool {
	if transactionType == TransactionTypeTransfer {
		return true
	}
	return c.CategoryType == transactionType
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeIncome || categoryType == CategoryTypeExpense
}
