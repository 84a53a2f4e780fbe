package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
)

var (
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrCategoryIDRequired  = errors.New("category ID is required")
	ErrBudgetDateRange     = errors.New("budget end date must not be before its start date")
)

// Budget caps spending in one category per period. Spent is never stored.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period     string          `gorm:"type:varchar(10);not null" json:"period"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	IsActive   bool            `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrUserIDRequired
	}
	if b.CategoryID == uuid.Nil {
		return ErrCategoryIDRequired
	}
	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}
	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}
	if b.StartDate.IsZero() {
		b.StartDate = CivilDate(time.Now())
	}
	b.StartDate = CivilDate(b.StartDate)
	if b.EndDate != nil {
		end := CivilDate(*b.EndDate)
		if end.Before(b.StartDate) {
			return ErrBudgetDateRange
		}
		b.EndDate = &end
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetPeriod checks if the budget period is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}
