package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid checking account",
			account: Account{
				UserID:      validUserID,
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
				Currency:    "usd",
			},
		},
		{
			name: "credit card with negative balance",
			account: Account{
				UserID:      validUserID,
				Name:        "Rewards Card",
				AccountType: AccountTypeCreditCard,
				Balance:     decimal.RequireFromString("-472.54"),
				Currency:    "USD",
			},
		},
		{
			name: "missing user ID",
			account: Account{
				Name:        "Cash",
				AccountType: AccountTypeCash,
				Currency:    "USD",
			},
			wantErr: ErrUserIDRequired,
		},
		{
			name: "blank name",
			account: Account{
				UserID:      validUserID,
				Name:        "   ",
				AccountType: AccountTypeSavings,
				Currency:    "USD",
			},
			wantErr: ErrAccountNameMissing,
		},
		{
			name: "unknown account type",
			account: Account{
				UserID:      validUserID,
				Name:        "Money Market",
				AccountType: "money_market",
				Currency:    "USD",
			},
			wantErr: ErrInvalidAccountType,
		},
		{
			name: "unknown currency",
			account: Account{
				UserID:      validUserID,
				Name:        "Travel",
				AccountType: AccountTypeCash,
				Currency:    "ZZZ",
			},
			wantErr: ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "USD", tt.account.Currency)
		})
	}
}

func TestTotalBalance(t *testing.T) {
	accounts := []Account{
		{Balance: decimal.RequireFromString("7129.75")},
		{Balance: decimal.RequireFromString("6500.00")},
		{Balance: decimal.RequireFromString("-472.54")},
	}

	assert.True(t, TotalBalance(accounts).Equal(decimal.RequireFromString("13157.21")))
	assert.True(t, TotalBalance(nil).IsZero())
}
