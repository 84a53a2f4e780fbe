package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

var (
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrAccountIDRequired       = errors.New("account ID is required")
	ErrTransactionDateRequired = errors.New("transaction date is required")
	ErrTransferDestinationType = errors.New("only transfers may carry a destination account")
	ErrTransferToSameAccount   = errors.New("transfer destination must differ from the source account")
)

// Transaction is a single ledger entry. Amount is always non-negative; the
// sign applied to an account is implied by TransactionType.
//
// A transfer debits AccountID and, when TransferAccountID is set, credits the
// destination. A transfer without a destination only debits AccountID.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	TransferAccountID *uuid.UUID      `gorm:"type:uuid;index" json:"transfer_account_id,omitempty"`
	TransactionType   string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date              time.Time       `gorm:"type:date;not null;index" json:"date"`
	Description       string          `gorm:"type:varchar(255)" json:"description"`
	Merchant          string          `gorm:"type:varchar(255)" json:"merchant,omitempty"`
	Location          string          `gorm:"type:varchar(255)" json:"location,omitempty"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	Tags              StringSet       `gorm:"type:text" json:"tags"`
	CreatedAt         time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate normalises the date and tags and validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if t.AccountID == uuid.Nil {
		return ErrAccountIDRequired
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}
	t.Date = CivilDate(t.Date)

	if t.TransferAccountID != nil {
		if t.TransactionType != TransactionTypeTransfer {
			return ErrTransferDestinationType
		}
		if *t.TransferAccountID == t.AccountID {
			return ErrTransferToSameAccount
		}
	}

	t.Tags = NewStringSet(t.Tags...)

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsTransfer returns true for transfer transactions
func (t *Transaction) IsTransfer() bool {
	return t.TransactionType == TransactionTypeTransfer
}

// Touches reports whether the transaction affects the given account's balance.
func (t *Transaction) Touches(accountID uuid.UUID) bool {
	if t.AccountID == accountID {
		return true
	}
	return t.TransferAccountID != nil && *t.TransferAccountID == accountID
}

// AffectedAccounts returns the accounts whose balance depends on this transaction.
func (t *Transaction) AffectedAccounts() []uuid.UUID {
	ids := []uuid.UUID{t.AccountID}
	if t.TransferAccountID != nil {
		ids = append(ids, *t.TransferAccountID)
	}
	return ids
}

// SignedAmountFor returns the signed contribution of this transaction to the
// balance of accountID. Income credits, expense debits, and a transfer debits
// its source and credits its destination.
func (t *Transaction) SignedAmountFor(accountID uuid.UUID) decimal.Decimal {
	switch t.TransactionType {
	case TransactionTypeIncome:
		if t.AccountID == accountID {
			return t.Amount
		}
	case TransactionTypeExpense:
		if t.AccountID == accountID {
			return t.Amount.Neg()
		}
	case TransactionTypeTransfer:
		if t.AccountID == accountID {
			return t.Amount.Neg()
		}
		if t.TransferAccountID != nil && *t.TransferAccountID == accountID {
			return t.Amount
		}
	}
	return decimal.Zero
}

// SignedBalance is the balance implied for accountID by the given transactions.
func SignedBalance(accountID uuid.UUID, transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for i := range transactions {
		balance = balance.Add(transactions[i].SignedAmountFor(accountID))
	}
	return balance
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// CivilDate strips the clock from t and returns midnight UTC of the same
// calendar day as seen in t's own location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
