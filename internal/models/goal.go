package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNameMissing      = errors.New("goal name is required")
	ErrGoalCompletedEarly   = errors.New("goal cannot be completed before its current amount reaches the target")
	ErrGoalNegativeProgress = errors.New("goal current amount cannot be negative")
)

// FinancialGoal is a savings target. CurrentAmount is maintained by the user;
// the engine only reports progress against TargetAmount.
type FinancialGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `gorm:"type:date" json:"target_date,omitempty"`
	IsCompleted   bool            `gorm:"not null" json:"is_completed"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for FinancialGoal
func (g *FinancialGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for FinancialGoal
func (g *FinancialGoal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields
func (g *FinancialGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return ErrUserIDRequired
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameMissing
	}
	if err := ValidateAmount(g.TargetAmount); err != nil {
		return err
	}
	if g.CurrentAmount.IsNegative() {
		return ErrGoalNegativeProgress
	}
	if err := ValidateAmount(g.CurrentAmount); err != nil {
		return err
	}
	if g.IsCompleted && g.CurrentAmount.LessThan(g.TargetAmount) {
		return ErrGoalCompletedEarly
	}
	if g.TargetDate != nil {
		date := CivilDate(*g.TargetDate)
		g.TargetDate = &date
	}
	return nil
}

// TableName returns the table name for FinancialGoal
func (g *FinancialGoal) TableName() string {
	return "financial_goals"
}

// TotalSaved sums the current amounts of the given goals.
func TotalSaved(goals []FinancialGoal) decimal.Decimal {
	total := decimal.Zero
	for _, goal := range goals {
		total = total.Add(goal.CurrentAmount)
	}
	return total
}
