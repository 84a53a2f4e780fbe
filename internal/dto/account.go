package dto

import (
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the request payload for creating a new account.
// A non-zero opening balance is recorded as a dated transaction.
type CreateAccountRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	AccountType    string `json:"account_type" validate:"required,account_type"`
	BankName       string `json:"bank_name" validate:"omitempty,max=100"`
	Currency       string `json:"currency" validate:"omitempty,currency_code"`
	OpeningBalance string `json:"opening_balance" validate:"omitempty,signed_amount"`
}

// ToModel builds the account and its opening balance
func (r CreateAccountRequest) ToModel() (*models.Account, decimal.Decimal, error) {
	opening, err := validation.ParseSignedAmount(r.OpeningBalance)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return &models.Account{
		Name:        r.Name,
		AccountType: r.AccountType,
		BankName:    r.BankName,
		Currency:    r.Currency,
		IsActive:    true,
	}, opening, nil
}

// UpdateAccountRequest represents the request payload for updating an account.
// Balance is derived from transactions and cannot be set here.
type UpdateAccountRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	AccountType string `json:"account_type" validate:"required,account_type"`
	BankName    string `json:"bank_name" validate:"omitempty,max=100"`
	Currency    string `json:"currency" validate:"omitempty,currency_code"`
	IsActive    *bool  `json:"is_active"`
}

// Apply copies the editable fields onto an existing account
func (r UpdateAccountRequest) Apply(account *models.Account) {
	account.Name = r.Name
	account.AccountType = r.AccountType
	account.BankName = r.BankName
	if r.Currency != "" {
		account.Currency = r.Currency
	}
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}
}
