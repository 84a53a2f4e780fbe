package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BudgetStatusOnTrack  = "on_track"
	BudgetStatusWarning  = "warning"
	BudgetStatusOver     = "over"
	BudgetStatusInactive = "inactive"
)

// PeriodTotals is the aggregate of a transaction set over one window.
// Transfers never count as income or expense.
type PeriodTotals struct {
	IncomeTotal      decimal.Decimal `json:"income_total"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	NetTotal         decimal.Decimal `json:"net_total"`
	TransferTotal    decimal.Decimal `json:"transfer_total"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryTotal is one row of a category breakdown. A nil CategoryID is the
// uncategorised bucket.
type CategoryTotal struct {
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName     string          `json:"category_name"`
	CategoryType     string          `json:"category_type"`
	Color            string          `json:"color,omitempty"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transaction_count"`
}

// Progress describes current against target. Percent is unclamped;
// DisplayPercent is clamped to [0, 100] for progress bars.
type Progress struct {
	Percent        decimal.Decimal `json:"percent"`
	DisplayPercent decimal.Decimal `json:"display_percent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Overage        decimal.Decimal `json:"overage"`
	IsOverTarget   bool            `json:"is_over_target"`
}

type BudgetStatus struct {
	Budget        Budget          `json:"budget"`
	CategoryName  string          `json:"category_name"`
	Window        Window          `json:"window"`
	Spent         decimal.Decimal `json:"spent"`
	Progress      *Progress       `json:"progress,omitempty"`
	ProgressError string          `json:"progress_error,omitempty"`
	Status        string          `json:"status"`
}

type GoalStatus struct {
	Goal          FinancialGoal `json:"goal"`
	Progress      *Progress     `json:"progress,omitempty"`
	ProgressError string        `json:"progress_error,omitempty"`
	DaysRemaining *int          `json:"days_remaining,omitempty"`
	ReachedTarget bool          `json:"reached_target"`
}

// DashboardSummary is everything the overview page renders in one read.
type DashboardSummary struct {
	Mode               string          `json:"mode"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	AccountCount       int             `json:"account_count"`
	MonthWindow        Window          `json:"month_window"`
	Month              PeriodTotals    `json:"month"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
	Goals              []GoalStatus    `json:"goals"`
	TotalSaved         decimal.Decimal `json:"total_saved"`
	TotalBudgeted      decimal.Decimal `json:"total_budgeted"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
}
