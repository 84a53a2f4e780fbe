package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCreditCard = "credit_card"
	AccountTypeCash       = "cash"
	AccountTypeInvestment = "investment"
	AccountTypeLoan       = "loan"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameMissing = errors.New("account name is required")
	ErrUserIDRequired     = errors.New("user ID is required")
)

// Account is a user's money container. Balance is a derived cache of the
// signed sum of the account's transactions and is only written by reconciliation.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountType string          `gorm:"type:varchar(20);not null" json:"account_type"`
	BankName    string          `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	IsActive    bool            `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields. Negative balances are legal for
// credit cards and loans, so balance is not checked here.
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameMissing
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	currency, err := NormalizeCurrency(a.Currency)
	if err != nil {
		return err
	}
	a.Currency = currency

	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard,
		AccountTypeCash, AccountTypeInvestment, AccountTypeLoan:
		return true
	default:
		return false
	}
}

// TotalBalance sums the balances of the given accounts.
func TotalBalance(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}
